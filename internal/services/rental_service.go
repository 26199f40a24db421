package services

import (
	"context"
	"errors"
	"io"

	"rentalBack/internal/models"
)

// PictureStore persists an uploaded rental picture and returns its public URL.
// utils.DiskStore and utils.S3Store both satisfy it.
type PictureStore interface {
	Store(file io.Reader, size int64, originalName string) (string, error)
}

// RentalRepo is the storage dependency of the rental and message services;
// *repositories.RentalRepository implements it.
type RentalRepo interface {
	CreateRental(ctx context.Context, rental models.Rental) (models.Rental, error)
	GetRentalByID(ctx context.Context, id int) (models.Rental, error)
	GetAllRentals(ctx context.Context) ([]models.Rental, error)
	UpdateRental(ctx context.Context, rental models.Rental) (models.Rental, error)
	DeleteRental(ctx context.Context, id int) error
}

// PictureUpload carries an uploaded picture from the handler into the service.
type PictureUpload struct {
	File     io.Reader
	Size     int64
	Filename string
}

type RentalService struct {
	RentalRepo RentalRepo
	UserRepo   UserRepo
	Pictures   PictureStore
}

func (s *RentalService) GetRentalsWithDTOs(ctx context.Context) ([]models.RentalDTO, error) {
	rentals, err := s.RentalRepo.GetAllRentals(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.RentalDTO, 0, len(rentals))
	for _, rental := range rentals {
		dtos = append(dtos, rental.ToDTO())
	}
	return dtos, nil
}

func (s *RentalService) GetRentalByID(ctx context.Context, id int) (models.Rental, error) {
	return s.RentalRepo.GetRentalByID(ctx, id)
}

func (s *RentalService) FindRentalDTOByID(ctx context.Context, id int) (models.RentalDTO, error) {
	rental, err := s.RentalRepo.GetRentalByID(ctx, id)
	if err != nil {
		return models.RentalDTO{}, err
	}
	return rental.ToDTO(), nil
}

// CreateRental resolves the owner from the authenticated email, stores the
// picture and persists the listing. Only a missing account maps to
// ErrOwnerNotFound; other lookup failures propagate as-is.
func (s *RentalService) CreateRental(ctx context.Context, rental models.Rental, picture PictureUpload, ownerEmail string) (models.Rental, error) {
	owner, err := s.UserRepo.GetUserByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.Rental{}, models.ErrOwnerNotFound
		}
		return models.Rental{}, err
	}

	pictureURL, err := s.Pictures.Store(picture.File, picture.Size, picture.Filename)
	if err != nil {
		return models.Rental{}, err
	}

	rental.Picture = pictureURL
	rental.OwnerID = owner.ID
	return s.RentalRepo.CreateRental(ctx, rental)
}

// UpdateRental overwrites the listing fields. Only the owner may update; the
// picture is replaced only when a new non-empty file is supplied.
func (s *RentalService) UpdateRental(ctx context.Context, id int, update models.Rental, picture *PictureUpload, ownerEmail string) (models.Rental, error) {
	rental, err := s.RentalRepo.GetRentalByID(ctx, id)
	if err != nil {
		return models.Rental{}, err
	}

	owner, err := s.UserRepo.GetUserByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.Rental{}, models.ErrOwnerNotFound
		}
		return models.Rental{}, err
	}
	if rental.OwnerID != owner.ID {
		return models.Rental{}, models.ErrNotRentalOwner
	}

	if picture != nil && picture.Size > 0 {
		pictureURL, err := s.Pictures.Store(picture.File, picture.Size, picture.Filename)
		if err != nil {
			return models.Rental{}, err
		}
		rental.Picture = pictureURL
	}

	rental.Name = update.Name
	rental.Surface = update.Surface
	rental.Price = update.Price
	rental.Description = update.Description

	return s.RentalRepo.UpdateRental(ctx, rental)
}

// DeleteRental exists for parity with the repository; no route exposes it.
func (s *RentalService) DeleteRental(ctx context.Context, id int) error {
	return s.RentalRepo.DeleteRental(ctx, id)
}
