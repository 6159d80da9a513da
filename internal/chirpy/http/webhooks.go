package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
	"github.com/chirpy-app/chirpy/pkg/slogx"
)

// WebhookHandler serves POST /api/polka/webhooks. The caller authenticates
// with the configured API key in the X-API-Key header; no user context is
// involved.
type WebhookHandler struct {
	WebhookService *service.WebhookService
	APIKey         string
}

type webhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		UserID string `json:"user_id"`
	} `json:"data"`
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	key, err := httpx.APIKey(r.Header)
	if err != nil || subtle.ConstantTimeCompare([]byte(key), []byte(h.APIKey)) != 1 {
		log.Warn("webhook rejected: bad api key")
		httpx.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.WebhookService.HandleEvent(ctx, req.Event, req.Data.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
