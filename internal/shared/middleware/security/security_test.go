package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func limitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func request(r http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":5000"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitPerClient(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 2}}
	r := limitedEngine(NewRateLimiter(cfg, zap.NewNop()))

	assert.Equal(t, http.StatusNoContent, request(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, request(r, "10.0.0.1").Code)

	rec := request(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")

	assert.Equal(t, http.StatusNoContent, request(r, "10.0.0.2").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: false, RequestsPerSecond: 1, Burst: 1}}
	r := limitedEngine(NewRateLimiter(cfg, zap.NewNop()))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, request(r, "10.0.0.1").Code)
	}
}

func TestCleanupForgetsIdleClients(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 5, Burst: 5}}
	rl := NewRateLimiter(cfg, zap.NewNop())
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	now = now.Add(5 * time.Minute)
	rl.getLimiter("10.0.0.2")
	now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, rl.Cleanup())
	assert.Len(t, rl.limiters, 1)
}

func TestStartCleanupStops(t *testing.T) {
	rl := NewRateLimiter(&config.Config{}, zap.NewNop())
	stop := make(chan struct{})
	rl.StartCleanup(time.Millisecond, stop)
	time.Sleep(5 * time.Millisecond)
	close(stop)
	time.Sleep(5 * time.Millisecond)
}

func TestCORSAllowsConfiguredAndLocalOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment: "development",
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://console.example.com"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         600,
		},
	}
	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for origin, allowed := range map[string]bool{
		"https://console.example.com": true,
		"http://localhost:5173":       true,
		"https://evil.example.com":    false,
	} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Equal(t, http.StatusForbidden, rec.Code, origin)
		}
	}
}
