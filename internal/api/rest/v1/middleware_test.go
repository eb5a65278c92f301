//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/app"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/MGTheTrain/bookshelf/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	tr := newTestRouter(t)

	w := tr.serve(httptest.NewRequest(http.MethodGet, "/items/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
}

func TestSecurityHeaders_OnErrors(t *testing.T) {
	tr := newTestRouter(t)

	w := tr.serve(httptest.NewRequest(http.MethodGet, "/items/42", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRequestLogger_RequestID(t *testing.T) {
	tr := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/items/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := tr.serve(req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = tr.serve(httptest.NewRequest(http.MethodGet, "/items/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(config.RateLimitSettings{Enabled: true, RPS: 1, Burst: 2}))
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	serve := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:1234"))
	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:1234"))

	// other clients own their bucket
	assert.Equal(t, http.StatusNoContent, serve("10.0.0.2:1234"))
}

func newRateLimitedRouter(t *testing.T, settings config.RateLimitSettings) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.SetupTestLogger(t)
	catalogService, err := app.NewCatalogService(app.SeedItems(), log)
	require.NoError(t, err)
	return NewRouter(config.CORSSettings{AllowOrigins: []string{"*"}}, settings, Services{Catalog: catalogService}, log)
}

func TestRateLimit_IgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	r := newRateLimitedRouter(t, config.RateLimitSettings{Enabled: true, RPS: 1, Burst: 1})

	limited := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/items/", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 19, limited)
}

func TestRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	r := newRateLimitedRouter(t, config.RateLimitSettings{
		Enabled: true, RPS: 1, Burst: 1, TrustedProxies: []string{"203.0.113.0/24"},
	})

	serve := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/items/", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", client)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.NotEqual(t, http.StatusTooManyRequests, serve("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1"))
	assert.NotEqual(t, http.StatusTooManyRequests, serve("10.0.0.2"))
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(config.RateLimitSettings{Enabled: false}))
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestIPRateLimiter_ForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))

	now = now.Add(limiter.idle + time.Second)
	assert.True(t, limiter.allow("10.0.0.2"))
	assert.Len(t, limiter.visitors, 1)
	assert.True(t, limiter.allow("10.0.0.1"))
}

func TestIPRateLimiter_SweepsOncePerIdlePeriod(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	limiter := newIPRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.allow("10.0.0.1")
	now = start.Add(limiter.idle / 2)
	limiter.allow("10.0.0.2")

	now = start.Add(limiter.idle + time.Second)
	limiter.allow("10.0.0.3")
	assert.Len(t, limiter.visitors, 2)

	// 10.0.0.2 is stale by now but the next sweep is not due yet
	now = start.Add(limiter.idle*3/2 + 2*time.Second)
	limiter.allow("10.0.0.4")
	assert.Len(t, limiter.visitors, 3)

	now = start.Add(2*limiter.idle + 2*time.Second)
	limiter.allow("10.0.0.5")
	assert.Len(t, limiter.visitors, 2)
	assert.Contains(t, limiter.visitors, "10.0.0.4")
	assert.Contains(t, limiter.visitors, "10.0.0.5")
}
