package sqlite

import (
	"context"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
)

type usersRepo struct {
	q querier
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, is_chirpy_red, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.IsChirpyRed, u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_chirpy_red, created_at, updated_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_chirpy_red, created_at, updated_at
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) UpdateUserCredentials(
	ctx context.Context,
	userID, email, passwordHash string,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET email = ?, password_hash = ?, updated_at = ?
		WHERE id = ?`,
		email, passwordHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *usersRepo) UpgradeUser(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET is_chirpy_red = 1, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) DeleteAllUsers(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM users`)
	return err
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsChirpyRed, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
