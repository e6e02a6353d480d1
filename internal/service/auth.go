// Package service holds the server business logic between the handlers and
// the repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StockYard/internal/model"
	"StockYard/internal/repo"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a bad username or password. The
// handler maps it to the upstream 400 body; the reason is never detailed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when a presented token fails verification.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 30 * 24 * time.Hour

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// AuthService issues and verifies auth tokens. Tokens are signed JWTs but
// opaque strings to clients.
type AuthService struct {
	users  repo.UserRepository
	secret string
}

func NewAuthService(users repo.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Authenticate checks the credentials and returns a fresh token. Any failure
// mode collapses into ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.buildToken(u.ID)
}

func (s *AuthService) buildToken(userID int64) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token string and returns the user id.
func (s *AuthService) VerifyToken(tokenString string) (int64, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// EnsureUser creates the account if the username is free. Used by seeding.
func (s *AuthService) EnsureUser(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.users.CreateIfAbsent(ctx, &model.User{Username: username, PasswordHash: string(hash)})
	return err
}
