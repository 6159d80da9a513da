package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
	"github.com/chirpy-app/chirpy/pkg/slogx"
)

// writeServiceError is the single boundary translator from the service error
// taxonomy to response status codes. Anything outside the four kinds is a
// server fault: logged with detail, reported without.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		httpx.WriteJSONError(w, http.StatusBadRequest, errMessage(err, "bad request"))
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSONError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSONError(w, http.StatusNotFound, "not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// errMessage surfaces the detail wrapped around a BadRequest sentinel, e.g.
// "bad_request: chirp is too long" becomes "chirp is too long". Other kinds
// keep fixed messages so nothing internal leaks.
func errMessage(err error, fallback string) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, ": "); ok && detail != "" {
		return detail
	}
	return fallback
}
