package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresSigningKey(t *testing.T) {
	if _, err := NewManager("", "self", time.Hour); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewManager("test-secret", "self", time.Hour)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	token, err := m.NewJWT("user@example.com")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}

	subject, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if subject != "user@example.com" {
		t.Errorf("unexpected subject: %q", subject)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	issuing, _ := NewManager("key-one", "self", time.Hour)
	verifying, _ := NewManager("key-two", "self", time.Hour)

	token, err := issuing.NewJWT("user@example.com")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}

	if _, err := verifying.Parse(token); err == nil {
		t.Fatal("expected signature validation to fail with the wrong key")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := &Manager{signingKey: "test-secret", issuer: "self", ttl: -time.Hour}

	token, err := m.NewJWT("user@example.com")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m, _ := NewManager("test-secret", "self", time.Hour)

	if _, err := m.Parse("not-a-jwt"); err == nil {
		t.Fatal("expected parse error for malformed token")
	}
}
