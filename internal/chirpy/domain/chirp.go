package domain

import "time"

// Chirp is a short text post. Body is at most 140 characters and has the
// banned-word filter applied before it is stored.
type Chirp struct {
	ID        string
	UserID    string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
