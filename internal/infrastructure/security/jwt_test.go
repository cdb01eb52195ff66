package security

import (
	"testing"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

func TestSignAndVerifySessionToken(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("unit-secret", "legislate-core")
	u := domain.User{ID: 42, Role: domain.RoleNgo, Status: domain.StatusVerified}

	tok, err := signer.SignSessionToken(u, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := signer.VerifySessionToken(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userId = %d, want 42", claims.UserID)
	}
	if claims.Role != domain.RoleNgo || claims.Status != domain.StatusVerified {
		t.Fatalf("role/status not carried: %+v", claims)
	}
	if time.Until(claims.Exp) > time.Hour || time.Until(claims.Exp) < 55*time.Minute {
		t.Fatalf("unexpected expiry: %v", claims.Exp)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("secret-a", "legislate-core")
	other := NewJWTSigner("secret-b", "legislate-core")

	tok, err := signer.SignSessionToken(domain.User{ID: 1, Role: domain.RoleAdmin, Status: domain.StatusVerified}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := other.VerifySessionToken(tok); !domain.Is(err, "token_invalid") {
		t.Fatalf("want token_invalid, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("unit-secret", "legislate-core")
	tok, err := signer.SignSessionToken(domain.User{ID: 1, Role: domain.RoleIndividual, Status: domain.StatusVerified}, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := signer.VerifySessionToken(tok); !domain.Is(err, "token_expired") {
		t.Fatalf("want token_expired, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("unit-secret", "legislate-core")
	if _, err := signer.VerifySessionToken("not.a.token"); !domain.Is(err, "token_invalid") {
		t.Fatalf("want token_invalid, got %v", err)
	}
}
