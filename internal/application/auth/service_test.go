package auth

import (
	"errors"
	"testing"

	domain "ecoclean/internal/domain/auth"
)

func TestDisabledAuthAcceptsAnything(t *testing.T) {
	svc := NewService("")
	if svc.Enabled() {
		t.Fatal("Enabled() = true without hash")
	}
	if err := svc.ValidateToken(""); err != nil {
		t.Errorf("ValidateToken(\"\") = %v", err)
	}
}

func TestGeneratedTokenValidates(t *testing.T) {
	pair, err := NewService("").GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if len(pair.Token) != 64 {
		t.Errorf("token length = %d, want 64", len(pair.Token))
	}

	svc := NewService(pair.Hash)
	if !svc.Enabled() {
		t.Fatal("Enabled() = false with hash")
	}
	if err := svc.ValidateToken(pair.Token); err != nil {
		t.Errorf("ValidateToken(valid) = %v", err)
	}
	if err := svc.ValidateToken("wrong-token-value-123"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("ValidateToken(wrong) = %v", err)
	}
	if err := svc.ValidateToken(""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("ValidateToken(empty) = %v", err)
	}
}

func TestHashTokenRejectsShortTokens(t *testing.T) {
	if _, err := NewService("").HashToken("short"); !errors.Is(err, domain.ErrTokenTooShort) {
		t.Errorf("HashToken(short) = %v", err)
	}
}
