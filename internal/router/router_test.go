package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/handler"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/service"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/config"
)

// newTestEngine assembles the full engine with a real auth service and
// empty domain handlers. Requests in these tests never get past binding
// or the auth middleware, so the domain services stay untouched.
func newTestEngine(t *testing.T, distDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env: config.EnvDevelopment,
		SPA: config.SPAConfig{DistDir: distDir},
	}
	authService := service.NewAuthService(nil, nil, nil, nil, service.AuthConfig{
		Secret: "router-secret",
		Expiry: time.Hour,
	})
	metricsService := service.NewMetricsService()

	return New(cfg, zap.NewNop(), authService, metricsService, Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Complaint:    handler.NewComplaintHandler(nil),
		Leave:        handler.NewLeaveHandler(nil),
		Announcement: handler.NewAnnouncementHandler(nil),
		Stats:        handler.NewStatsHandler(nil),
		Report:       handler.NewReportHandler(nil),
		Metrics:      handler.NewMetricsHandler(metricsService),
	})
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	engine.ServeHTTP(w, req)
	return w
}

// The frontend calls /register, /login and friends at the server root;
// a prefix on the route table would strand every client on the fallback.
func TestRouterServesAPIAtRoot(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())

	w := serve(engine, http.MethodPost, "/register", `{"email":"jane@hostel.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name, email and password are required"}`, w.Body.String())

	w = serve(engine, http.MethodPost, "/login", `{"email":"jane@hostel.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())

	for _, path := range []string{"/profile", "/complaints", "/leaves", "/announcements", "/stats"} {
		w := serve(engine, http.MethodGet, path, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String(), path)
	}
}

func TestRouterFallbackServesShellForGETOnly(t *testing.T) {
	distDir := t.TempDir()
	shell := "<!doctype html><title>HostelOps</title>"
	require.NoError(t, os.WriteFile(filepath.Join(distDir, "index.html"), []byte(shell), 0o644))

	engine := newTestEngine(t, distDir)

	// Unknown GETs are client-side routes and get the shell.
	w := serve(engine, http.MethodGet, "/complaints/new", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "HostelOps")

	// Unknown non-GETs are missed API calls and keep their JSON 404.
	w = serve(engine, http.MethodPost, "/nope", `{}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, w.Body.String())
}

func TestRouterFallbackWithoutShell(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())

	w := serve(engine, http.MethodGet, "/missing-page", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, w.Body.String())
}
