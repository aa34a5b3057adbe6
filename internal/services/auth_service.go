package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "taskboard.com/taskboard/internal/errors"
	repository "taskboard.com/taskboard/internal/repositories"
)

// AuthService issues and verifies the opaque bearer tokens used by every
// authenticated route. The signing key is injected from configuration.
type AuthService struct {
	users     *repository.UserRepository
	secretKey []byte
	tokenTTL  time.Duration
}

func NewAuthService(users *repository.UserRepository, secretKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	_, err := s.users.Create(ctx, username, password)
	return err
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByCredentials(ctx, username, password)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", apperrors.ErrTokenSigning
	}
	return signed, nil
}

// VerifyToken recovers the username carried in a presented token. Every
// failure mode collapses into not-found so callers cannot probe for valid
// token shapes.
func (s *AuthService) VerifyToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", apperrors.ErrNotFound
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperrors.ErrNotFound
	}
	return claims.Subject, nil
}
