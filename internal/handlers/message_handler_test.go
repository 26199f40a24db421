package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentalBack/internal/models"
)

func postMessage(t *testing.T, h *MessageHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.CreateMessage(rr, req)
	return rr
}

func TestCreateMessageRejectsInvalidBody(t *testing.T) {
	h := &MessageHandler{}

	rr := postMessage(t, h, "{not json")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateMessageRequiresIDs(t *testing.T) {
	h := &MessageHandler{}

	cases := []string{
		`{"rental_id":0,"user_id":1,"message":"hi"}`,
		`{"rental_id":1,"user_id":0,"message":"hi"}`,
		`{"rental_id":-1,"user_id":1,"message":"hi"}`,
		`{"message":"hi"}`,
	}
	for _, body := range cases {
		rr := postMessage(t, h, body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestCreateMessageRejectsBlankMessage(t *testing.T) {
	h := &MessageHandler{}

	rr := postMessage(t, h, `{"rental_id":1,"user_id":2,"message":"   "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body failed: %v", err)
	}
	if body["error"] != "Message cannot be blank" {
		t.Errorf("unexpected error message %q", body["error"])
	}
}

func TestCreateMessageRejectsOversizedMessage(t *testing.T) {
	h := &MessageHandler{}

	long := strings.Repeat("a", models.MaxMessageLen+1)
	rr := postMessage(t, h, `{"rental_id":1,"user_id":2,"message":"`+long+`"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
