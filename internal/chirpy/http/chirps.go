package http

import (
	"encoding/json"
	"net/http"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
)

// ChirpsHandler serves the chirp CRUD surface. Reads are public; create and
// delete require an access token and delete additionally checks ownership.
type ChirpsHandler struct {
	ChirpService *service.ChirpService
}

type chirpRequest struct {
	Body string `json:"body"`
}

func (h *ChirpsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req chirpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.ChirpService.Create(ctx, userID, req.Body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toChirpResponse(c))
}

func (h *ChirpsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("author_id")
	descending := r.URL.Query().Get("sort") == "desc"

	chirps, err := h.ChirpService.List(r.Context(), authorID, descending)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]ChirpResponse, 0, len(chirps))
	for _, c := range chirps {
		out = append(out, toChirpResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ChirpsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.ChirpService.Get(r.Context(), r.PathValue("chirpID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toChirpResponse(c))
}

func (h *ChirpsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.ChirpService.Delete(ctx, r.PathValue("chirpID"), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
