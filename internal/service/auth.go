package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"joyeria-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService exchanges the admin password for a bearer token and verifies
// tokens on admin requests. It satisfies middleware.TokenVerifier so the
// verification strategy stays swappable at the handler boundary.
type AuthService interface {
	Login(password string) (string, error)
	Verify(token string) error
}

type authServiceImpl struct {
	adminPassword string
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func NewAuthService(adminCfg *config.Admin) AuthService {
	return &authServiceImpl{
		adminPassword: adminCfg.Password,
		jwtSecret:     []byte(adminCfg.JWTSecret),
		tokenTTL:      time.Duration(adminCfg.TokenTTL) * time.Hour,
	}
}

func (s *authServiceImpl) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (s *authServiceImpl) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
