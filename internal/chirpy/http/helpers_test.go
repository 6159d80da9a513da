package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	chirpyhttp "github.com/chirpy-app/chirpy/internal/chirpy/http"
	"github.com/chirpy-app/chirpy/internal/chirpy/service"
	"github.com/chirpy-app/chirpy/internal/chirpy/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret-do-not-use"
	testPolkaKey = "f271c81ff7084ee5b99a5091b42d486e"
)

func newTestRouter(t *testing.T) *chirpyhttp.Router {
	t.Helper()
	return buildTestRouter(t, "dev", t.TempDir())
}

func newTestRouterForPlatform(t *testing.T, platform string) *chirpyhttp.Router {
	t.Helper()
	return buildTestRouter(t, platform, t.TempDir())
}

func newTestRouterWithStaticDir(t *testing.T, staticDir string) *chirpyhttp.Router {
	t.Helper()
	return buildTestRouter(t, "dev", staticDir)
}

func buildTestRouter(t *testing.T, platform, staticDir string) *chirpyhttp.Router {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chirpyhttp.NewRouter(testSecret, testPolkaKey, platform, staticDir, logger)
	r.AuthService = &service.AuthService{Store: s, Secret: testSecret}
	r.UserService = &service.UserService{Store: s}
	r.ChirpService = &service.ChirpService{Store: s}
	r.WebhookService = &service.WebhookService{Store: s}
	r.ApplyRoutes()

	return r
}

// doJSON fires a request at the router and returns the recorder. A nil body
// sends an empty request; a non-nil one is JSON-encoded.
func doJSON(
	t *testing.T,
	router http.Handler,
	method, target string,
	body any,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// newRawRequest builds a request whose body is sent verbatim, for testing
// malformed payloads.
func newRawRequest(
	t *testing.T,
	method, target, body string,
) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req, httptest.NewRecorder()
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func registerUser(
	t *testing.T,
	router http.Handler,
	email, password string,
) chirpyhttp.UserResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/users",
		map[string]string{"email": email, "password": password}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeJSON[chirpyhttp.UserResponse](t, rec)
}

func loginUser(
	t *testing.T,
	router http.Handler,
	email, password string,
) chirpyhttp.LoginResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/login",
		map[string]string{"email": email, "password": password}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeJSON[chirpyhttp.LoginResponse](t, rec)
}
