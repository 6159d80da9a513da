package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's ID once the authn middleware
// has validated an access token.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user ID, or "" when the request
// did not pass through the authn middleware.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
