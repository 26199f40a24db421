package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentalBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	query := `
        INSERT INTO messages (rental_id, user_id, message, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `
	message.CreatedAt = time.Now()
	message.UpdatedAt = &message.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		message.RentalID, message.UserID, message.Message, message.CreatedAt, message.UpdatedAt,
	)
	if err != nil {
		return models.Message{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	message.ID = int(id)
	return message, nil
}
