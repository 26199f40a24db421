package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUserToDTOOmitsPassword(t *testing.T) {
	updated := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	u := User{
		ID:        7,
		Name:      "Ann",
		Email:     "ann@example.com",
		Password:  "hashed",
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		UpdatedAt: &updated,
	}

	data, err := json.Marshal(u.ToDTO())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if strings.Contains(body, "hashed") || strings.Contains(body, "password") {
		t.Errorf("DTO leaked the password: %s", body)
	}
	if !strings.Contains(body, `"created_at":"2024-05-01T09:30:00Z"`) {
		t.Errorf("unexpected created_at formatting: %s", body)
	}
	if !strings.Contains(body, `"updated_at":"2024-05-02T10:00:00Z"`) {
		t.Errorf("unexpected updated_at formatting: %s", body)
	}
}

func TestRentalToDTOWithoutUpdatedAt(t *testing.T) {
	r := Rental{
		ID:        3,
		Name:      "Seaside flat",
		Surface:   42,
		Price:     980.50,
		OwnerID:   7,
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	dto := r.ToDTO()
	if dto.UpdatedAt != "" {
		t.Errorf("expected empty updated_at for never-updated rental, got %q", dto.UpdatedAt)
	}
	if dto.OwnerID != 7 {
		t.Errorf("owner id lost in mapping: %+v", dto)
	}

	data, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"owner_id":7`) {
		t.Errorf("expected snake_case owner_id field: %s", data)
	}
}
