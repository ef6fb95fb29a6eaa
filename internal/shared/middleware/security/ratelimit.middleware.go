package security

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gestion-projets-core/internal/app/config"
)

// limiterIdleTTL durée après laquelle le limiteur d'un client inactif est oublié
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limite les requêtes par adresse IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	enabled  bool
	now      func() time.Time
	log      *zap.Logger
}

func NewRateLimiter(cfg *config.Config, log *zap.Logger) *RateLimiter {
	rl := cfg.GetRateLimit()
	burst := rl.Burst
	if burst < 1 {
		burst = rl.RequestsPerSecond
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(rl.RequestsPerSecond),
		burst:    burst,
		enabled:  rl.Enabled && rl.RequestsPerSecond > 0,
		now:      time.Now,
		log:      log.Named("ratelimit"),
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = rl.now()
	return entry.limiter
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		limiter := rl.getLimiter(c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))

		if !limiter.Allow() {
			rl.log.Warn("limite de requêtes atteinte",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Trop de requêtes, réessayez dans un instant",
				"data":    nil,
				"details": map[string]interface{}{"code": "RATE_LIMIT_EXCEEDED"},
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}

// Cleanup oublie les clients inactifs depuis limiterIdleTTL
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, entry := range rl.limiters {
		if rl.now().Sub(entry.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// StartCleanup nettoie périodiquement jusqu'à fermeture de stop
func (rl *RateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}
