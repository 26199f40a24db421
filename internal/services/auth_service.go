package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rentalBack/internal/models"
	"rentalBack/utils"
)

type AuthService struct {
	UserRepo     UserRepo
	TokenManager *utils.Manager
}

// Register creates the account and immediately issues a token for it. The
// email is trimmed once up front so the existence check and the stored row
// see the same value.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.UserRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if _, err := s.UserRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return s.TokenManager.NewJWT(user.Email)
}

// Login checks the credentials and issues a token. Both an unknown email and a
// wrong password collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return s.TokenManager.NewJWT(user.Email)
}

// CurrentUser resolves the authenticated principal's email to its persisted user.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (models.User, error) {
	return s.UserRepo.GetUserByEmail(ctx, email)
}
