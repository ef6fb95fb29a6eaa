package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/v1/projets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/v1/projets/:id", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/projets/12", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/projets/13", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/v1/projets/:id", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestObserveCounters(t *testing.T) {
	before := testutil.ToFloat64(upstreamCalls.WithLabelValues("POST", "502"))
	ObserveUpstream("post", 502, 30*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(upstreamCalls.WithLabelValues("POST", "502"))-before)

	before = testutil.ToFloat64(storeOperations.WithLabelValues("redis", "save", "false"))
	ObserveStore("redis", "save", errors.New("timeout"))
	assert.Equal(t, 1.0, testutil.ToFloat64(storeOperations.WithLabelValues("redis", "save", "false"))-before)
}

func TestHandlerServesRegistry(t *testing.T) {
	ObserveUpstream("GET", 200, time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gestion_projets_upstream_calls_total")
}
