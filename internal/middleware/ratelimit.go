package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	rateLimitMessage = "Rate limit exceeded. Please try again later."
	limiterIdleTTL   = 10 * time.Minute
)

// RateLimiter allows each client a fixed number of requests per minute.
type RateLimiter struct {
	// limiters stores one token bucket per client IP
	limiters sync.Map
	perMinute int
	exempt    map[string]bool

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type limiterEntry struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	seen    time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.seen = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.seen)
}

// NewRateLimiter creates a limiter allowing perMinute requests per client.
// Requests to exempt paths are never limited. Call Close to stop the
// background cleanup.
func NewRateLimiter(perMinute int, exempt ...string) *RateLimiter {
	rl := &RateLimiter{
		perMinute:       perMinute,
		exempt:          make(map[string]bool, len(exempt)),
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	for _, p := range exempt {
		rl.exempt[p] = true
	}

	go rl.cleanup()

	return rl
}

// Close stops the cleanup goroutine.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.limiters.Range(func(key, value any) bool {
				if value.(*limiterEntry).idleSince(now) > limiterIdleTTL {
					rl.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.perMinute),
		seen:    now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func clientIdentifier(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// Middleware returns the Gin handler. A non-positive limit disables it.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.perMinute <= 0 || rl.exempt[c.Request.URL.Path] {
			c.Next()
			return
		}

		clientID := clientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.perMinute))

		if !limiter.Allow() {
			logger.Log.Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("correlation_id", GetCorrelationID(c)),
			)

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": rateLimitMessage})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
