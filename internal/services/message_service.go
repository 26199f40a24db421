package services

import (
	"context"

	"rentalBack/internal/models"
)

// MessageNotifier delivers a new-message event to a connected listing owner.
// The websocket manager in cmd implements it.
type MessageNotifier interface {
	NotifyUser(userID int, n models.MessageNotification)
}

// MessageRepo is the storage dependency of the message service;
// *repositories.MessageRepository implements it.
type MessageRepo interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
}

type MessageService struct {
	MessageRepo MessageRepo
	RentalRepo  RentalRepo
	UserRepo    UserRepo
	Notifier    MessageNotifier
	Push        *PushService
}

// CreateMessage verifies both referenced rows exist before inserting, then
// pushes a notification to the rental owner on a best-effort basis.
func (s *MessageService) CreateMessage(ctx context.Context, req models.CreateMessageRequest) (models.Message, error) {
	rental, err := s.RentalRepo.GetRentalByID(ctx, req.RentalID)
	if err != nil {
		return models.Message{}, err
	}

	sender, err := s.UserRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		RentalID: rental.ID,
		UserID:   sender.ID,
		Message:  req.Message,
	}

	created, err := s.MessageRepo.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, err
	}

	notification := models.MessageNotification{
		RentalID:   rental.ID,
		RentalName: rental.Name,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Message:    created.Message,
	}
	if s.Notifier != nil {
		s.Notifier.NotifyUser(rental.OwnerID, notification)
	}
	if s.Push != nil {
		s.Push.NotifyNewMessage(ctx, rental.OwnerID, notification)
	}

	return created, nil
}
