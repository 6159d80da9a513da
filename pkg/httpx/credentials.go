package httpx

import (
	"errors"
	"net/http"
	"strings"
)

// APIKeyHeader is the dedicated header webhook callers present their key in.
const APIKeyHeader = "X-API-Key"

// ErrNoCredential reports a request carrying no usable credential.
var ErrNoCredential = errors.New("httpx: missing credential")

// BearerToken extracts the bearer value from the Authorization header. The
// "Bearer " prefix is required; the returned value may be a signed access
// token or an opaque refresh token, the caller decides how to treat it.
func BearerToken(h http.Header) (string, error) {
	authz := h.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", ErrNoCredential
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if token == "" {
		return "", ErrNoCredential
	}
	return token, nil
}

// APIKey extracts the webhook API key from its dedicated header.
func APIKey(h http.Header) (string, error) {
	key := strings.TrimSpace(h.Get(APIKeyHeader))
	if key == "" {
		return "", ErrNoCredential
	}
	return key, nil
}
