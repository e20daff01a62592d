package admin

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pammu-27/sparsha-backend/internal/pkg/jwt"
)

// Service checks the single site-admin password and issues tokens.
type Service struct {
	passwordHash []byte
	jwt          *jwt.Service
}

func NewService(passwordHash string, jwtService *jwt.Service) *Service {
	return &Service{passwordHash: []byte(passwordHash), jwt: jwtService}
}

func (s *Service) Login(ctx context.Context, password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.jwt.GenerateToken(jwt.RoleAdmin)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, exp, nil
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
