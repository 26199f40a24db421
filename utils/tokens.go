package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Manager issues and parses the HMAC-signed bearer tokens used on /api routes.
// The token subject is the user's email.
type Manager struct {
	signingKey string
	issuer     string
	ttl        time.Duration
}

func NewManager(signingKey, issuer string, ttl time.Duration) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{signingKey: signingKey, issuer: issuer, ttl: ttl}, nil
}

func (m *Manager) NewJWT(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   email,
		Issuer:    m.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(m.ttl).Unix(),
	})

	return token.SignedString([]byte(m.signingKey))
}

// Parse validates the token signature and expiry and returns the subject.
func (m *Manager) Parse(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	return claims.Subject, nil
}
