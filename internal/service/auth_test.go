package service

import (
	"testing"

	"joyeria-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth() AuthService {
	return NewAuthService(&config.Admin{
		Password:  "super-secreta",
		JWTSecret: "test-signing-secret",
		TokenTTL:  1,
	})
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	_, err := newAuth().Login("adivina")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	auth := newAuth()

	token, err := auth.Login("super-secreta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, auth.Verify(token))
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	auth := newAuth()

	token, err := auth.Login("super-secreta")
	require.NoError(t, err)

	assert.ErrorIs(t, auth.Verify(token+"x"), ErrInvalidToken)
	assert.ErrorIs(t, auth.Verify("not-a-jwt"), ErrInvalidToken)
}

func TestVerifyRejectsTokenFromOtherSecret(t *testing.T) {
	other := NewAuthService(&config.Admin{
		Password:  "super-secreta",
		JWTSecret: "different-secret",
		TokenTTL:  1,
	})

	token, err := other.Login("super-secreta")
	require.NoError(t, err)

	assert.ErrorIs(t, newAuth().Verify(token), ErrInvalidToken)
}
