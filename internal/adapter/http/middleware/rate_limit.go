package middleware

import (
	"net/http"
	"sync"
	"time"

	"indt_seguros/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)

// RateLimiter keeps one token bucket per client key. Idle buckets are
// evicted after maxAge.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	maxAge time.Duration

	mu    sync.Mutex
	store map[string]*limiterEntry
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:  rate.Limit(reqPerSec),
		burst:  burst,
		maxAge: 10 * time.Minute,
		store:  make(map[string]*limiterEntry),
	}
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if entry, ok := r.store[key]; ok {
		entry.updated = now
		return entry.limiter
	}

	for k, entry := range r.store {
		if now.Sub(entry.updated) > r.maxAge {
			delete(r.store, k)
		}
	}

	lim := rate.NewLimiter(r.limit, r.burst)
	r.store[key] = &limiterEntry{limiter: lim, updated: now}
	return lim
}

func (r *RateLimiter) Allow(key string) bool {
	return r.get(key).Allow()
}

// RateLimit rejects requests above the per IP budget with 429.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP) {
			zerolog.Ctx(c.Request.Context()).Warn().Str("client_ip", clientIP).Msg("rate limit exceeded")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
