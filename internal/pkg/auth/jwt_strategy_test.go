package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	customerID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if customerID != 42 {
		t.Fatalf("unexpected customer id: %d", customerID)
	}
	if strategy.Name() != "jwt" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
}

func TestJWTStrategy_DefaultTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.ttl != defaultTokenTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestJWTStrategy_Expired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	strategy.now = func() time.Time { return issued }

	token, err := strategy.IssueToken(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	strategy.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTStrategy_InvalidTokens(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	other := NewJWTStrategy("other", Options{TTL: time.Minute})

	foreign, err := other.IssueToken(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tests := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"foreign key":  foreign,
		"no expiry":    noExpiry,
		"bad subject":  badSubject,
		"wrong method": wrongAlg,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected invalid token, got %v", err)
			}
		})
	}
}
