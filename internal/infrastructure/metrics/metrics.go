// Package metrics expose les compteurs Prometheus du service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry regroupe les collecteurs de l'application
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gestion_projets",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requêtes HTTP en cours.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestion_projets",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Nombre total de requêtes HTTP traitées.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gestion_projets",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Durée des requêtes HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	upstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestion_projets",
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Appels au backend REST, par statut (0 = échec réseau).",
		},
		[]string{"method", "status"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gestion_projets",
			Subsystem: "upstream",
			Name:      "call_duration_seconds",
			Help:      "Durée des appels au backend REST.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"method"},
	)

	storeOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestion_projets",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Opérations sur le stockage local.",
		},
		[]string{"driver", "operation", "success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		upstreamCalls,
		upstreamDuration,
		storeOperations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expose les métriques enregistrées
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware mesure chaque requête, étiquetée par route gin
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Request.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveUpstream enregistre un appel au backend
func ObserveUpstream(method string, status int, duration time.Duration) {
	upstreamCalls.WithLabelValues(strings.ToUpper(method), strconv.Itoa(status)).Inc()
	upstreamDuration.WithLabelValues(strings.ToUpper(method)).Observe(duration.Seconds())
}

// ObserveStore enregistre une opération sur le stockage local
func ObserveStore(driver, operation string, err error) {
	storeOperations.WithLabelValues(driver, operation, strconv.FormatBool(err == nil)).Inc()
}
