package sqlite

import (
	"context"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
)

type refreshTokensRepo struct {
	q querier
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO refresh_tokens (token_hash, user_id, expires_at, revoked_at, created_at, updated_at)
		VALUES (?, ?, ?, NULL, ?, ?)`,
		t.TokenHash, t.UserID, t.ExpiresAt, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *refreshTokensRepo) GetRefreshTokenByHash(
	ctx context.Context,
	hash string,
) (domain.RefreshToken, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT token_hash, user_id, expires_at, revoked_at, created_at, updated_at
		FROM refresh_tokens WHERE token_hash = ?`, hash)

	t, err := scanRefreshToken(row)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *refreshTokensRepo) RevokeRefreshToken(
	ctx context.Context,
	hash string,
) (domain.RefreshToken, error) {
	now := time.Now().UTC()
	row := r.q.QueryRowContext(ctx, `
		UPDATE refresh_tokens SET revoked_at = ?, updated_at = ?
		WHERE token_hash = ?
		RETURNING token_hash, user_id, expires_at, revoked_at, created_at, updated_at`,
		now, now, hash)

	t, err := scanRefreshToken(row)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return t, nil
}
