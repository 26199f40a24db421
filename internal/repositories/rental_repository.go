package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalBack/internal/models"
)

type RentalRepository struct {
	DB *sql.DB
}

func (r *RentalRepository) CreateRental(ctx context.Context, rental models.Rental) (models.Rental, error) {
	query := `
        INSERT INTO rentals (name, surface, price, picture, description, owner_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	rental.CreatedAt = time.Now()
	rental.UpdatedAt = &rental.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		rental.Name, rental.Surface, rental.Price, rental.Picture, rental.Description,
		rental.OwnerID, rental.CreatedAt, rental.UpdatedAt,
	)
	if err != nil {
		return models.Rental{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Rental{}, err
	}
	rental.ID = int(id)
	return rental, nil
}

func (r *RentalRepository) GetRentalByID(ctx context.Context, id int) (models.Rental, error) {
	var rental models.Rental
	query := `
        SELECT id, name, surface, price, picture, description, owner_id, created_at, updated_at
        FROM rentals
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rental.ID, &rental.Name, &rental.Surface, &rental.Price, &rental.Picture,
		&rental.Description, &rental.OwnerID, &rental.CreatedAt, &rental.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rental{}, models.ErrRentalNotFound
	}
	if err != nil {
		return models.Rental{}, err
	}
	return rental, nil
}

func (r *RentalRepository) GetAllRentals(ctx context.Context) ([]models.Rental, error) {
	query := `
        SELECT id, name, surface, price, picture, description, owner_id, created_at, updated_at
        FROM rentals
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []models.Rental
	for rows.Next() {
		var rental models.Rental
		err := rows.Scan(
			&rental.ID, &rental.Name, &rental.Surface, &rental.Price, &rental.Picture,
			&rental.Description, &rental.OwnerID, &rental.CreatedAt, &rental.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) UpdateRental(ctx context.Context, rental models.Rental) (models.Rental, error) {
	query := `
        UPDATE rentals
        SET name = ?, surface = ?, price = ?, picture = ?, description = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	rental.UpdatedAt = &updatedAt
	result, err := r.DB.ExecContext(ctx, query,
		rental.Name, rental.Surface, rental.Price, rental.Picture, rental.Description,
		rental.UpdatedAt, rental.ID,
	)
	if err != nil {
		return models.Rental{}, err
	}

	if _, err := result.RowsAffected(); err != nil {
		return models.Rental{}, err
	}

	return r.GetRentalByID(ctx, rental.ID)
}

func (r *RentalRepository) DeleteRental(ctx context.Context, id int) error {
	query := `DELETE FROM rentals WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRentalNotFound
	}
	return nil
}
