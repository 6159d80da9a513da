package httpx

import (
	"context"
	"net/http"

	"github.com/chirpy-app/chirpy/pkg/jwtx"
	"github.com/chirpy-app/chirpy/pkg/slogx"
)

// AuthnMiddleware validates the access token on protected routes and injects
// the authenticated user ID into the request context. Every failure mode
// (missing header, bad signature, expiry, wrong issuer, no subject) is
// reported identically as 401 so nothing leaks about why the token failed.
func AuthnMiddleware(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, err := BearerToken(r.Header)
			if err != nil {
				writeBearerError(w, "missing bearer token")
				return
			}

			userID, err := jwtx.ValidateAccessToken(raw, secret)
			if err != nil {
				log.Warn("access token rejected", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
}
