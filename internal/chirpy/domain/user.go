package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2 encoded
	IsChirpyRed  bool   // set by the payment-provider webhook
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
