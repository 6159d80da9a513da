package domain

import "time"

// TokenPair is what login returns: the short-lived access token (JWT) and
// the opaque refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshToken models the stored refresh token record. Rows are never
// deleted; revocation timestamps the row and the audit trail stays behind.
type RefreshToken struct {
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time // nil means active
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Usable reports whether the token can still mint access tokens. This is the
// single source of truth for refresh-time and revoke-time checks alike.
func (t RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}
