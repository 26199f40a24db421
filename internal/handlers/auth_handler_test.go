package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentalBack/internal/models"
	"rentalBack/internal/services"
	"rentalBack/utils"
)

// takenEmailRepo reports every email as already registered.
type takenEmailRepo struct{}

func (takenEmailRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return user, nil
}

func (takenEmailRepo) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return models.User{}, models.ErrUserNotFound
}

func (takenEmailRepo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return models.User{}, models.ErrUserNotFound
}

func (takenEmailRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return true, nil
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	h := &AuthHandler{}

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader("{broken"))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	h := &AuthHandler{}

	cases := []string{
		`{"email":"a@b.com","password":"pw"}`,
		`{"name":"Ann","password":"pw"}`,
		`{"name":"Ann","email":"a@b.com"}`,
		`{"name":"   ","email":"a@b.com","password":"pw"}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Register(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rr.Code)
		}

		var resp map[string]string
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding error body failed: %v", err)
		}
		if resp["error"] != "name, email and password are required" {
			t.Errorf("body %s: unexpected error message %q", body, resp["error"])
		}
	}
}

func TestRegisterDuplicateEmailIs400(t *testing.T) {
	tm, err := utils.NewManager("test-secret", "self", time.Hour)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	h := &AuthHandler{Service: &services.AuthService{UserRepo: takenEmailRepo{}, TokenManager: tm}}

	body := `{"name":"Ann","email":"ann@example.com","password":"pw"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding error body failed: %v", err)
	}
	if resp["error"] != "Email already in use." {
		t.Errorf("unexpected error message %q", resp["error"])
	}
}

func TestMeRequiresPrincipal(t *testing.T) {
	h := &AuthHandler{}

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	rr := httptest.NewRecorder()

	h.Me(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
