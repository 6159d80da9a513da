package http

import (
	"net/http"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
)

// RefreshHandler serves POST /api/refresh. The bearer value is treated as an
// opaque refresh token, looked up server-side rather than decoded.
type RefreshHandler struct {
	AuthService *service.AuthService
}

type refreshResponse struct {
	Token string `json:"token"`
}

func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	refreshOpaque, err := httpx.BearerToken(r.Header)
	if err != nil {
		httpx.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	accessToken, err := h.AuthService.Refresh(r.Context(), refreshOpaque)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, refreshResponse{Token: accessToken})
}

// RevokeHandler serves POST /api/revoke. Revocation is idempotent; only a
// token that never existed is rejected.
type RevokeHandler struct {
	AuthService *service.AuthService
}

func (h *RevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	refreshOpaque, err := httpx.BearerToken(r.Header)
	if err != nil {
		httpx.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.AuthService.Revoke(r.Context(), refreshOpaque); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
