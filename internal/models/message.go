package models

import "time"

// MaxMessageLen bounds the free-text body of a rental message.
const MaxMessageLen = 2000

type Message struct {
	ID        int        `json:"id"`
	RentalID  int        `json:"rental_id"`
	UserID    int        `json:"user_id"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateMessageRequest struct {
	RentalID int    `json:"rental_id"`
	UserID   int    `json:"user_id"`
	Message  string `json:"message"`
}

// MessageNotification is the payload pushed to a listing owner when someone
// messages one of their rentals.
type MessageNotification struct {
	RentalID   int    `json:"rental_id"`
	RentalName string `json:"rental_name"`
	SenderID   int    `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Message    string `json:"message"`
}
