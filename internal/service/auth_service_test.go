package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service"
)

func TestAuthService_LoginLifecycle(t *testing.T) {
	svc := service.NewAuthService("admin", "secret")

	token, err := svc.Login("admin", "secret")
	require.NoError(t, err, "valid credentials should mint a token")
	require.NotEmpty(t, token)
	require.True(t, svc.ValidateToken(token), "minted token should validate")

	second, err := svc.Login("admin", "secret")
	require.NoError(t, err)
	require.NotEqual(t, token, second, "each login mints a distinct token")

	svc.Logout(token)
	require.False(t, svc.ValidateToken(token), "logged-out token should not validate")
	require.True(t, svc.ValidateToken(second), "other sessions stay live")
}

func TestAuthService_LoginRejected(t *testing.T) {
	svc := service.NewAuthService("admin", "secret")

	_, err := svc.Login("admin", "wrong")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = svc.Login("nobody", "secret")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_ValidateUnknownToken(t *testing.T) {
	svc := service.NewAuthService("admin", "secret")

	require.False(t, svc.ValidateToken(""), "empty token is never valid")
	require.False(t, svc.ValidateToken("made-up"))
}
