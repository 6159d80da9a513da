package http

import (
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/domain"
)

// UserResponse is the public shape of a user. The password hash never leaves
// the service.
type UserResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Email       string    `json:"email"`
	IsChirpyRed bool      `json:"is_chirpy_red"`
}

// LoginResponse is UserResponse plus the freshly issued token pair.
type LoginResponse struct {
	UserResponse

	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type ChirpResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Body      string    `json:"body"`
	UserID    string    `json:"user_id"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Email:       u.Email,
		IsChirpyRed: u.IsChirpyRed,
	}
}

func toChirpResponse(c domain.Chirp) ChirpResponse {
	return ChirpResponse{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Body:      c.Body,
		UserID:    c.UserID,
	}
}
