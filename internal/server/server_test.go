package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/lifeheroes/internal/app"
	"github.com/nfrund/lifeheroes/internal/config"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
}

func TestHTTPErrorHandler_HTTPErrorIsNotLogged(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)
	e.GET("/conflict", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "reload")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conflict", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, logBuffer.String())
}

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		SessionSecret:      "test-secret-test-secret-32-bytes",
		AppTTL:             time.Minute,
		MaxVisitors:        10,
		SubmitDelay:        time.Millisecond,
		RedirectDelay:      time.Millisecond,
		SubmitRateLimit:    rateLimit,
		AssetsMode:         "embed",
		TracingServiceName: "life-heroes-test",
	}
	deps, err := app.Resolve(app.NewInjector(ctx, cfg))
	require.NoError(t, err)

	s := New(deps)
	s.RegisterRoutes()
	require.NoError(t, s.startWorkers(ctx))
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	})
	return s
}

func TestServer_ServesHomeDocument(t *testing.T) {
	s := newTestServer(t, 10)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="app"`)
	assert.Contains(t, body, `data-page="home"`)
	assert.Contains(t, body, `ws-connect="/ws"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var hasSession bool
	for _, c := range rec.Result().Cookies() {
		hasSession = hasSession || c.Name == "heroes-app"
	}
	assert.True(t, hasSession, "home must bind a fresh app to the session")
}

func TestServer_ServesStaticAssets(t *testing.T) {
	s := newTestServer(t, 10)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/hero.js", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "heroVideo"))
}

func TestServer_AppRoutesRequireSession(t *testing.T) {
	s := newTestServer(t, 10)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/app"},
		{http.MethodPost, "/navigate/login"},
		{http.MethodPost, "/menu/toggle"},
		{http.MethodPost, "/audio/toggle"},
		{http.MethodPost, "/form/field"},
		{http.MethodGet, "/ws"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusConflict, rec.Code)
		})
	}
}

func TestServer_SubmitIsRateLimited(t *testing.T) {
	s := newTestServer(t, 2)

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/form/submit", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusConflict, http.StatusConflict, http.StatusTooManyRequests}, codes)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, 10)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
