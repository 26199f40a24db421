package services

import (
	"context"

	"rentalBack/internal/models"
)

// UserRepo is the account storage dependency shared by the services;
// *repositories.UserRepository implements it.
type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserService struct {
	UserRepo UserRepo
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.UserRepo.GetUserByEmail(ctx, email)
}
