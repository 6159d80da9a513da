package store

import (
	"context"
	"errors"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Chirps() Chirps
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateUserCredentials sets email and password_hash and bumps updated_at.
	UpdateUserCredentials(ctx context.Context, userID, email, passwordHash string) error

	// UpgradeUser flips is_chirpy_red and bumps updated_at.
	UpgradeUser(ctx context.Context, userID string) error

	// DeleteAllUsers is the admin reset. Cascades to chirps and refresh_tokens.
	DeleteAllUsers(ctx context.Context) error
}

type Chirps interface {
	// CreateChirp inserts a new chirp (id is ULID).
	CreateChirp(ctx context.Context, c domain.Chirp) error

	// GetChirpByID returns a chirp by id.
	GetChirpByID(ctx context.Context, id string) (domain.Chirp, error)

	// ListChirps returns chirps ordered by created_at. authorID narrows the
	// result to one author when non-empty; descending reverses the order.
	ListChirps(ctx context.Context, authorID string, descending bool) ([]domain.Chirp, error)

	// DeleteChirp removes a chirp by id.
	DeleteChirp(ctx context.Context, id string) error
}

type RefreshTokens interface {
	// CreateRefreshToken stores a new refresh token record.
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token record by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken sets revoked_at and updated_at to now unconditionally
	// and returns the updated record. Revoking an already-revoked token is not
	// an error, it just bumps the timestamps again.
	RevokeRefreshToken(ctx context.Context, hash string) (domain.RefreshToken, error)
}
