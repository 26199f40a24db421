package repositories

import (
	"context"
	"database/sql"
)

// NotifyTokenRepository stores FCM device tokens per user.
type NotifyTokenRepository struct {
	DB *sql.DB
}

func (r *NotifyTokenRepository) InsertToken(ctx context.Context, userID int, token string) error {
	query := `
        INSERT INTO notify_tokens (user_id, token)
        VALUES (?, ?)
    `
	_, err := r.DB.ExecContext(ctx, query, userID, token)
	return err
}

func (r *NotifyTokenRepository) DeleteToken(ctx context.Context, token string) error {
	query := `DELETE FROM notify_tokens WHERE token = ?`
	_, err := r.DB.ExecContext(ctx, query, token)
	return err
}

func (r *NotifyTokenRepository) GetTokensByUserID(ctx context.Context, userID int) ([]string, error) {
	query := `SELECT token FROM notify_tokens WHERE user_id = ?`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
