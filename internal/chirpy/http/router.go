package http

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/pkg/httpx"
	"github.com/chirpy-app/chirpy/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	secret    string
	polkaKey  string
	platform  string
	staticDir string
	logger    *slog.Logger
	hits      atomic.Int64

	AuthService    *service.AuthService
	UserService    *service.UserService
	ChirpService   *service.ChirpService
	WebhookService *service.WebhookService
}

func NewRouter(secret, polkaKey, platform, staticDir string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		secret:    secret,
		polkaKey:  polkaKey,
		platform:  platform,
		staticDir: staticDir,
		logger:    logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSessions()
	r.registerChirps()
	r.registerWebhooks()
	r.registerAdmin()
	r.registerApp()
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST /api/users", http.HandlerFunc(h.HandleCreate))

	// PUT requires a valid access token; the middleware puts the subject in context.
	r.Mux.Handle("PUT /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.secret),
		),
	)
}

func (r *Router) registerSessions() {
	// POST /api/login - strict rate limit by IP (brute force prevention)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Refresh and revoke carry the opaque refresh token as the bearer value;
	// no authn middleware here, the handlers look the token up themselves.
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	revokeHandler := &RevokeHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/revoke",
		httpx.Chain(revokeHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerChirps() {
	h := &ChirpsHandler{ChirpService: r.ChirpService}

	r.Mux.Handle("GET /api/chirps", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /api/chirps/{chirpID}", http.HandlerFunc(h.HandleGet))

	r.Mux.Handle("POST /api/chirps",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.secret),
		),
	)

	r.Mux.Handle("DELETE /api/chirps/{chirpID}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.secret),
		),
	)
}

func (r *Router) registerWebhooks() {
	h := &WebhookHandler{
		WebhookService: r.WebhookService,
		APIKey:         r.polkaKey,
	}

	r.Mux.Handle("POST /api/polka/webhooks",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	r.Mux.Handle("GET /api/healthz", HealthzHandler())
	r.Mux.Handle("GET /admin/metrics", MetricsHandler(&r.hits))
	r.Mux.Handle("POST /admin/reset", &ResetHandler{
		UserService: r.UserService,
		Platform:    r.platform,
		Hits:        &r.hits,
	})
}

func (r *Router) registerApp() {
	fileServer := http.StripPrefix("/app", http.FileServer(http.Dir(r.staticDir)))
	r.Mux.Handle("/app/", httpx.Chain(fileServer, CountHits(&r.hits)))
}
