package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
	"github.com/chirpy-app/chirpy/pkg/jwtx"
)

// LoginHandler serves POST /api/login. Credentials travel in the body; on
// success the response carries the user plus an access/refresh token pair.
type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	ExpiresInSeconds int    `json:"expires_in_seconds,omitempty"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteJSONError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	// TTL policy lives here, not in the codec: default one hour, capped at
	// one hour regardless of what the client asks for.
	ttl := jwtx.ClampTTL(time.Duration(req.ExpiresInSeconds) * time.Second)

	u, pair, err := h.AuthService.Login(r.Context(), req.Email, req.Password, ttl)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		UserResponse: toUserResponse(u),
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
