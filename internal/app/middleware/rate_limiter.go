package middleware

import (
	"sync"
	"time"

	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token bucket limiter.
type TokenBucket struct {
	rate       float64 // tokens added per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a bucket that starts full.
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow takes one token if available.
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	limiters   = make(map[string]*TokenBucket)
	limitersMu sync.RWMutex
)

// getLimiter returns the bucket for a key, creating it on first use.
func getLimiter(key string, rate float64, burst int) *TokenBucket {
	limitersMu.RLock()
	limiter, exists := limiters[key]
	limitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(rate, burst)
		limitersMu.Lock()
		limiters[key] = limiter
		limitersMu.Unlock()
	}
	return limiter
}

// RateLimiterConfig tunes a rate limiting middleware instance.
type RateLimiterConfig struct {
	Rate      float64 // requests per second
	Burst     int
	LimitType string // "ip", "path" or "combined"
}

// DefaultRateLimiterConfig allows 1 request per second with a burst of 5,
// keyed by client IP.
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:      1,
	Burst:     5,
	LimitType: "ip",
}

// RateLimiter creates a rate limiting middleware.
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var key string
		switch cfg.LimitType {
		case "path":
			key = c.Request.URL.Path
		case "combined":
			key = c.ClientIP() + ":" + c.Request.URL.Path
		default:
			key = c.ClientIP()
		}

		if !getLimiter(key, cfg.Rate, cfg.Burst).Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "terlalu banyak permintaan, coba lagi nanti", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPRateLimiter limits by client IP.
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rate, Burst: burst, LimitType: "ip"})
}

// CombinedRateLimiter limits by client IP and path together.
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rate, Burst: burst, LimitType: "combined"})
}

// Idle buckets are dropped periodically so the map does not grow unbounded.
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			limitersMu.Lock()
			limiters = make(map[string]*TokenBucket)
			limitersMu.Unlock()
		}
	}()
}
