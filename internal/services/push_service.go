package services

import (
	"context"
	"log"
	"strconv"

	"firebase.google.com/go/messaging"

	"rentalBack/internal/models"
	"rentalBack/internal/repositories"
)

// PushService sends FCM notifications to a listing owner's registered devices.
// It is only constructed when a firebase credentials file is configured, so a
// nil PushService simply means push is disabled.
type PushService struct {
	Client    *messaging.Client
	TokenRepo *repositories.NotifyTokenRepository
}

func (s *PushService) RegisterToken(ctx context.Context, userID int, token string) error {
	return s.TokenRepo.InsertToken(ctx, userID, token)
}

func (s *PushService) UnregisterToken(ctx context.Context, token string) error {
	return s.TokenRepo.DeleteToken(ctx, token)
}

// NotifyNewMessage is best effort: delivery failures are logged, never
// surfaced to the sender.
func (s *PushService) NotifyNewMessage(ctx context.Context, ownerID int, n models.MessageNotification) {
	tokens, err := s.TokenRepo.GetTokensByUserID(ctx, ownerID)
	if err != nil {
		log.Printf("push: fetching tokens for user %d: %v", ownerID, err)
		return
	}

	for _, token := range tokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: "New message about " + n.RentalName,
				Body:  n.Message,
			},
			Data: map[string]string{
				"rental_id": strconv.Itoa(n.RentalID),
				"sender_id": strconv.Itoa(n.SenderID),
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority": "10",
				},
			},
		}
		if _, err := s.Client.Send(ctx, msg); err != nil {
			log.Printf("push: sending to token %s: %v", token, err)
		}
	}
}
