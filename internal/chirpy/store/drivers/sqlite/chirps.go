package sqlite

import (
	"context"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
)

type chirpsRepo struct {
	q querier
}

func (r *chirpsRepo) CreateChirp(ctx context.Context, c domain.Chirp) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO chirps (id, user_id, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Body, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *chirpsRepo) GetChirpByID(ctx context.Context, id string) (domain.Chirp, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, body, created_at, updated_at
		FROM chirps WHERE id = ?`, id)

	var c domain.Chirp
	if err := row.Scan(&c.ID, &c.UserID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Chirp{}, mapNotFound(err)
	}
	return c, nil
}

func (r *chirpsRepo) ListChirps(
	ctx context.Context,
	authorID string,
	descending bool,
) ([]domain.Chirp, error) {
	query := `SELECT id, user_id, body, created_at, updated_at FROM chirps`
	args := []any{}
	if authorID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, authorID)
	}
	if descending {
		query += ` ORDER BY created_at DESC`
	} else {
		query += ` ORDER BY created_at ASC`
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chirps []domain.Chirp
	for rows.Next() {
		var c domain.Chirp
		if err := rows.Scan(&c.ID, &c.UserID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		chirps = append(chirps, c)
	}
	return chirps, rows.Err()
}

func (r *chirpsRepo) DeleteChirp(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM chirps WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
