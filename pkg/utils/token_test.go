package utils_test

import (
	"testing"

	"room-booking/pkg/utils"

	"github.com/google/uuid"
)

func jwtConfig() utils.JWTConfig {
	return utils.JWTConfig{
		Secret:        "test-secret",
		Issuer:        "room-booking",
		Audience:      "room-booking-clients",
		ExpiryMinutes: 120,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := jwtConfig()
	userID := uuid.New()

	token, expiresAt, err := utils.GenerateToken(cfg, userID, "Alice Example", "a@x.com", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expiresAt.IsZero() {
		t.Error("expected expiry instant")
	}

	claims, err := utils.VerifyToken(cfg, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != userID.String() {
		t.Errorf("userId = %s, want %s", claims.UserID, userID)
	}
	if claims.UserName != "Alice Example" {
		t.Errorf("userName = %s, want Alice Example", claims.UserName)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("email = %s, want a@x.com", claims.Email)
	}
	if claims.Role != "CUSTOMER" {
		t.Errorf("role = %s, want CUSTOMER", claims.Role)
	}
	if claims.Issuer != cfg.Issuer {
		t.Errorf("issuer = %s, want %s", claims.Issuer, cfg.Issuer)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := jwtConfig()
	cfg.ExpiryMinutes = -10

	token, _, err := utils.GenerateToken(cfg, uuid.New(), "Alice", "a@x.com", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := utils.VerifyToken(jwtConfig(), token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	cfg := jwtConfig()

	token, _, err := utils.GenerateToken(cfg, uuid.New(), "Alice", "a@x.com", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	bad := cfg
	bad.Secret = "other-secret"
	if _, err := utils.VerifyToken(bad, token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestVerifyWrongIssuerOrAudience(t *testing.T) {
	cfg := jwtConfig()

	token, _, err := utils.GenerateToken(cfg, uuid.New(), "Alice", "a@x.com", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	badIssuer := cfg
	badIssuer.Issuer = "someone-else"
	if _, err := utils.VerifyToken(badIssuer, token); err == nil {
		t.Fatal("expected issuer mismatch to be rejected")
	}

	badAudience := cfg
	badAudience.Audience = "other-clients"
	if _, err := utils.VerifyToken(badAudience, token); err == nil {
		t.Fatal("expected audience mismatch to be rejected")
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	if _, err := utils.VerifyToken(jwtConfig(), "not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
