package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentalBack/internal/models"
	"rentalBack/utils"
)

// stubUserRepo satisfies UserRepo in memory and records the email values
// the service hands it.
type stubUserRepo struct {
	users       map[string]models.User
	exists      bool
	existsCalls []string
	created     []models.User
	emailErr    error
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = len(s.created) + 1
	s.created = append(s.created, user)
	return user, nil
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id int) (models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if s.emailErr != nil {
		return models.User{}, s.emailErr
	}
	u, ok := s.users[email]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.existsCalls = append(s.existsCalls, email)
	return s.exists, nil
}

func testTokenManager(t *testing.T) *utils.Manager {
	t.Helper()
	m, err := utils.NewManager("test-secret", "self", time.Hour)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func TestRegisterTrimsEmailOnce(t *testing.T) {
	repo := &stubUserRepo{}
	svc := &AuthService{UserRepo: repo, TokenManager: testTokenManager(t)}

	token, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Ann",
		Email:    "  ann@example.com ",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if len(repo.existsCalls) != 1 || repo.existsCalls[0] != "ann@example.com" {
		t.Errorf("existence check saw %v, want trimmed email", repo.existsCalls)
	}
	if len(repo.created) != 1 || repo.created[0].Email != "ann@example.com" {
		t.Errorf("stored email %q, want trimmed email", repo.created[0].Email)
	}

	subject, err := svc.TokenManager.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if subject != "ann@example.com" {
		t.Errorf("token subject %q, want trimmed email", subject)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{exists: true}
	svc := &AuthService{UserRepo: repo, TokenManager: testTokenManager(t)}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "pw",
	})
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no insert for a duplicate email")
	}
}

func TestLoginCollapsesUnknownEmail(t *testing.T) {
	repo := &stubUserRepo{users: map[string]models.User{}}
	svc := &AuthService{UserRepo: repo, TokenManager: testTokenManager(t)}

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "pw",
	})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
