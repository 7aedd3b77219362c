package auth

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	domain "ecoclean/internal/domain/auth"
)

const minTokenLength = 16

// Service defines the API token authentication interface
type Service interface {
	// Enabled reports whether a token hash is configured
	Enabled() bool
	ValidateToken(token string) error
	GenerateToken() (*domain.TokenPair, error)
	HashToken(token string) (string, error)
}

type service struct {
	tokenHash []byte
}

// NewService creates a new auth service. An empty hash disables auth.
func NewService(tokenHash string) Service {
	return &service{tokenHash: []byte(tokenHash)}
}

func (s *service) Enabled() bool {
	return len(s.tokenHash) > 0
}

func (s *service) ValidateToken(token string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *service) GenerateToken() (*domain.TokenPair, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	hash, err := s.HashToken(token)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{Token: token, Hash: hash}, nil
}

func (s *service) HashToken(token string) (string, error) {
	if len(token) < minTokenLength {
		return "", domain.ErrTokenTooShort
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	return string(bytes), err
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
