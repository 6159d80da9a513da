package http

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
)

const metricsHTML = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>`

// MetricsHandler serves GET /admin/metrics: the fileserver hit counter as HTML.
func MetricsHandler(hits *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, metricsHTML, hits.Load())
	})
}

// ResetHandler serves POST /admin/reset: wipes all users and zeroes the hit
// counter. Guarded to the dev platform; in anything else it is Forbidden.
type ResetHandler struct {
	UserService *service.UserService
	Platform    string
	Hits        *atomic.Int64
}

func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Platform != "dev" {
		httpx.WriteJSONError(w, http.StatusForbidden, "reset is only allowed in dev environment")
		return
	}

	if err := h.UserService.Reset(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.Hits.Store(0)

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Hits reset to 0"))
}

// CountHits increments the fileserver hit counter for every request that
// passes through it.
func CountHits(hits *atomic.Int64) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			next.ServeHTTP(w, r)
		})
	}
}
