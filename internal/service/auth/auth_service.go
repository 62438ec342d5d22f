package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service handles admin authentication and bearer tokens.
type Service interface {
	// Login checks the shared admin password and returns a signed token.
	Login(password string) (string, error)

	// Verify parses and validates a bearer token.
	Verify(token string) (*Claims, error)
}

// Claims identifies the authenticated admin.
type Claims struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

type service struct {
	secret        []byte
	adminPassword string
	tokenTTL      time.Duration
}

// NewService creates a new auth service signing tokens with secret.
func NewService(secret, adminPassword string, tokenTTL time.Duration) Service {
	return &service{
		secret:        []byte(secret),
		adminPassword: adminPassword,
		tokenTTL:      tokenTTL,
	}
}

func (s *service) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrWrongPassword
	}

	now := time.Now()
	claims := &Claims{
		Role:     "admin",
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (s *service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
