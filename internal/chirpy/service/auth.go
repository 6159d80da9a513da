package service

import (
	"context"
	"errors"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
	"github.com/chirpy-app/chirpy/internal/chirpy/store"
	"github.com/chirpy-app/chirpy/pkg/cryptox"
	"github.com/chirpy-app/chirpy/pkg/jwtx"
	"github.com/chirpy-app/chirpy/pkg/slogx"
)

// DefaultRefreshTokenTTL is how long a refresh token stays exchangeable
// unless revoked first.
const DefaultRefreshTokenTTL = 60 * 24 * time.Hour

// AuthService owns the session lifecycle: credential verification at login,
// access-token minting, and the stored refresh-token lifecycle.
type AuthService struct {
	Store      store.Store
	Secret     string
	RefreshTTL time.Duration
}

// Login verifies the credentials and, on success, issues an access token
// (with the caller-clamped TTL) plus a fresh refresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(
	ctx context.Context,
	email, password string,
	accessTTL time.Duration,
) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.TokenPair{}, ErrUnauthorized
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login password verification failed", "user_id", u.ID)
		return domain.User{}, domain.TokenPair{}, ErrUnauthorized
	}

	accessToken, err := jwtx.MakeAccessToken(u.ID, accessTTL, s.Secret)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	refreshOpaque, err := s.issueRefreshToken(ctx, u.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	return u, domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshOpaque,
	}, nil
}

// Refresh exchanges a still-usable refresh token for a new access token. The
// refresh token itself is untouched; it keeps working until revoked or
// expired. Absent, revoked and expired tokens all fail identically.
func (s *AuthService) Refresh(ctx context.Context, refreshOpaque string) (string, error) {
	rt, err := s.lookupRefreshToken(ctx, refreshOpaque)
	if err != nil {
		return "", err
	}
	if !rt.Usable(time.Now().UTC()) {
		return "", ErrUnauthorized
	}

	return jwtx.MakeAccessToken(rt.UserID, jwtx.DefaultAccessTokenTTL, s.Secret)
}

// Revoke timestamps the refresh token as revoked. The operation is
// idempotent: revoking an already-revoked token just bumps the timestamps.
// Only a token that never existed fails.
func (s *AuthService) Revoke(ctx context.Context, refreshOpaque string) error {
	fp := cryptox.FingerprintToken(refreshOpaque)
	_, err := s.Store.RefreshTokens().RevokeRefreshToken(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}
	return nil
}

// issueRefreshToken generates the opaque value, persists its fingerprint and
// returns the raw value. This is the only place the raw value is handed back.
func (s *AuthService) issueRefreshToken(ctx context.Context, userID string) (string, error) {
	refreshOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	ttl := s.RefreshTTL
	if ttl == 0 {
		ttl = DefaultRefreshTokenTTL
	}

	rt := domain.RefreshToken{
		TokenHash: cryptox.FingerprintToken(refreshOpaque),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return "", err
	}

	return refreshOpaque, nil
}

func (s *AuthService) lookupRefreshToken(
	ctx context.Context,
	refreshOpaque string,
) (domain.RefreshToken, error) {
	fp := cryptox.FingerprintToken(refreshOpaque)
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RefreshToken{}, ErrUnauthorized
		}
		return domain.RefreshToken{}, err
	}
	return rt, nil
}
