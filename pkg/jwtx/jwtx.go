// Package jwtx mints and validates the short-lived, stateless access tokens.
// Tokens are HS256-signed with a single process-wide secret and carry only
// issuer, subject, issued-at and expiry claims. There is no revocation list;
// compromise mitigation relies entirely on the short TTL.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the constant "iss" claim this service stamps on every access
// token and requires back on validation.
const Issuer = "chirpy"

// DefaultAccessTokenTTL is both the default and the upper bound for access
// token lifetimes. Callers asking for more get clamped by ClampTTL.
const DefaultAccessTokenTTL = time.Hour

var (
	// ErrInvalidToken covers bad signatures, malformed tokens and expired
	// tokens. Validation is a single signed parse, never an unsigned peek.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrIssuer reports an issuer claim that isn't ours.
	ErrIssuer = errors.New("jwtx: issuer mismatch")

	// ErrMissingSubject reports a token with no subject claim.
	ErrMissingSubject = errors.New("jwtx: missing subject")
)

// MakeAccessToken signs claims {iss, sub, iat, exp} for the given user.
func MakeAccessToken(userID string, ttl time.Duration, secret string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateAccessToken verifies signature and expiry in one parse and returns
// the subject (user ID). The three failure modes are distinguishable for
// tests but callers classify them all as unauthorized.
func ValidateAccessToken(token, secret string) (string, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	if claims.Issuer != Issuer {
		return "", ErrIssuer
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}

// ClampTTL applies the access-token lifetime policy: zero or negative means
// the default, anything above the default is capped.
func ClampTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > DefaultAccessTokenTTL {
		return DefaultAccessTokenTTL
	}
	return ttl
}
