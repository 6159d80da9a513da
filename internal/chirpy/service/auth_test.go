package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-do-not-use"

func newAuthFixture(t *testing.T) (*service.AuthService, *service.UserService) {
	t.Helper()

	s := newTestStore(t)
	auth := &service.AuthService{Store: s, Secret: testSecret}
	users := &service.UserService{Store: s}
	return auth, users
}

func TestAuthService_LoginSuccess(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	registered, err := users.Register(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)

	u, pair, err := auth.Login(ctx, "alice@example.com", "hunter2!", time.Hour)
	require.NoError(t, err)
	require.Equal(t, registered.ID, u.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// The access token must carry the user's id as subject.
	subject, err := jwtx.ValidateAccessToken(pair.AccessToken, testSecret)
	require.NoError(t, err)
	require.Equal(t, u.ID, subject)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "alice@example.com", "wrong", time.Hour)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.Login(context.Background(), "nobody@example.com", "hunter2!", time.Hour)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_RefreshFlow(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	u, err := users.Register(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)

	_, pair, err := auth.Login(ctx, "alice@example.com", "hunter2!", time.Hour)
	require.NoError(t, err)

	access, err := auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	subject, err := jwtx.ValidateAccessToken(access, testSecret)
	require.NoError(t, err)
	require.Equal(t, u.ID, subject)

	// The refresh token is not rotated; it keeps working.
	_, err = auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestAuthService_RefreshUnknownToken(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Refresh(context.Background(), "not-a-real-token")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_RefreshExpiredToken(t *testing.T) {
	auth, users := newAuthFixture(t)
	auth.RefreshTTL = -time.Minute // already expired when issued
	ctx := context.Background()

	_, err := users.Register(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)

	_, pair, err := auth.Login(ctx, "alice@example.com", "hunter2!", time.Hour)
	require.NoError(t, err)

	_, err = auth.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_RevokeThenRefreshFails(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)

	_, pair, err := auth.Login(ctx, "alice@example.com", "hunter2!", time.Hour)
	require.NoError(t, err)

	require.NoError(t, auth.Revoke(ctx, pair.RefreshToken))

	_, err = auth.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	// Revoking again is fine.
	require.NoError(t, auth.Revoke(ctx, pair.RefreshToken))
}

func TestAuthService_RevokeUnknownToken(t *testing.T) {
	auth, _ := newAuthFixture(t)

	err := auth.Revoke(context.Background(), "not-a-real-token")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}
