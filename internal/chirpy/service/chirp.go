package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
	"github.com/chirpy-app/chirpy/internal/chirpy/store"
	"github.com/chirpy-app/chirpy/pkg/idx"
)

// MaxChirpLength is the character limit on a chirp body.
const MaxChirpLength = 140

// bannedWords are replaced with **** wherever they appear as a whole word,
// case-insensitively.
var bannedWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

type ChirpService struct {
	Store store.Store
}

// Create validates, cleans and stores a chirp for the authenticated user.
func (s *ChirpService) Create(ctx context.Context, userID, body string) (domain.Chirp, error) {
	if body == "" {
		return domain.Chirp{}, fmt.Errorf("%w: body is required", ErrBadRequest)
	}
	if len(body) > MaxChirpLength {
		return domain.Chirp{}, fmt.Errorf(
			"%w: chirp is too long, max length is %d", ErrBadRequest, MaxChirpLength)
	}

	now := time.Now().UTC()
	c := domain.Chirp{
		ID:        idx.New().String(),
		UserID:    userID,
		Body:      cleanBody(body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Chirps().CreateChirp(ctx, c); err != nil {
		return domain.Chirp{}, err
	}
	return c, nil
}

// Get returns a single chirp by id.
func (s *ChirpService) Get(ctx context.Context, chirpID string) (domain.Chirp, error) {
	c, err := s.Store.Chirps().GetChirpByID(ctx, chirpID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Chirp{}, ErrNotFound
		}
		return domain.Chirp{}, err
	}
	return c, nil
}

// List returns chirps ordered by creation time, oldest first unless
// descending is set, optionally narrowed to one author.
func (s *ChirpService) List(
	ctx context.Context,
	authorID string,
	descending bool,
) ([]domain.Chirp, error) {
	return s.Store.Chirps().ListChirps(ctx, authorID, descending)
}

// Delete removes a chirp after the ownership check: the caller must be the
// chirp's author. A mismatch is Forbidden, not Unauthorized; the caller is
// authenticated, they just aren't the owner.
func (s *ChirpService) Delete(ctx context.Context, chirpID, callerID string) error {
	c, err := s.Store.Chirps().GetChirpByID(ctx, chirpID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if c.UserID != callerID {
		return ErrForbidden
	}

	if err := s.Store.Chirps().DeleteChirp(ctx, chirpID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// cleanBody masks banned words. Only exact whole-word matches (ignoring case)
// are replaced; punctuation attached to a word defeats the filter, same as
// the original behavior.
func cleanBody(body string) string {
	words := strings.Split(body, " ")
	for i, word := range words {
		if _, banned := bannedWords[strings.ToLower(word)]; banned {
			words[i] = "****"
		}
	}
	return strings.Join(words, " ")
}
