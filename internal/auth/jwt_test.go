package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"RouteMart/internal/auth"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := auth.NewTokenMaker("test-secret", 15*time.Minute)

	tok, err := tm.New("u_1", "alice@example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	claims, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "u_1" || claims.Email != "alice@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("empty jti")
	}
	if claims.Issuer != "routemart" {
		t.Fatalf("issuer = %s", claims.Issuer)
	}

	exp := claims.ExpiresAt.Time
	if d := time.Until(exp); d < 14*time.Minute || d > 16*time.Minute {
		t.Fatalf("expiry %v from now", d)
	}
}

func TestTokenMaker_Rejects(t *testing.T) {
	tm := auth.NewTokenMaker("test-secret", 15*time.Minute)

	if _, err := tm.Parse("not-a-token"); err == nil {
		t.Fatalf("garbage token accepted")
	}

	other := auth.NewTokenMaker("other-secret", 15*time.Minute)
	tok, err := other.New("u_1", "alice@example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := tm.Parse(tok); err == nil {
		t.Fatalf("foreign signature accepted")
	}

	expired := auth.NewTokenMaker("test-secret", -1*time.Minute)
	tok, err = expired.New("u_1", "alice@example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := tm.Parse(tok); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestTokenMaker_RejectsForeignIssuer(t *testing.T) {
	tm := auth.NewTokenMaker("test-secret", 15*time.Minute)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u_1",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
	})
	tok, err := foreign.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Parse(tok); err == nil {
		t.Fatalf("foreign issuer accepted")
	}
}
