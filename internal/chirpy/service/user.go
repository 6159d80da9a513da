package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
	"github.com/chirpy-app/chirpy/internal/chirpy/store"
	"github.com/chirpy-app/chirpy/pkg/cryptox"
	"github.com/chirpy-app/chirpy/pkg/idx"
)

type UserService struct {
	Store store.Store
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", ErrBadRequest)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: email already registered", ErrBadRequest)
		}
		return domain.User{}, err
	}

	return u, nil
}

// UpdateCredentials replaces the authenticated user's email and password.
func (s *UserService) UpdateCredentials(
	ctx context.Context,
	userID, email, password string,
) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", ErrBadRequest)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdateUserCredentials(ctx, userID, email, hash); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.User{}, ErrNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.User{}, fmt.Errorf("%w: email already registered", ErrBadRequest)
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}

// Reset wipes all users (and, via cascade, their chirps and refresh tokens).
// The handler layer restricts this to the dev platform.
func (s *UserService) Reset(ctx context.Context) error {
	return s.Store.Users().DeleteAllUsers(ctx)
}
