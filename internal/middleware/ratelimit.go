package middleware

import (
	"net/http"
	"sync"
	"time"

	"swapi/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// InMemoryRateLimiter limits requests per key (e.g. IP) with one token bucket
// per key. Each bucket holds limit tokens and refills at limit per window.
type InMemoryRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	every   rate.Limit
	burst   int
	idle    time.Duration
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	r := &InMemoryRateLimiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    window,
		stop:    make(chan struct{}),
	}
	go r.cleanup()
	return r
}

func (r *InMemoryRateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(r.every, r.burst)}
		r.buckets[key] = b
	}
	b.lastSeen = time.Now()
	return b.limiter.Allow()
}

// Close stops the background sweeper. It is a no-op on a nil limiter.
func (r *InMemoryRateLimiter) Close() {
	if r == nil {
		return
	}
	r.once.Do(func() { close(r.stop) })
}

func (r *InMemoryRateLimiter) cleanup() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-tick.C:
			r.sweep(time.Now())
		}
	}
}

// sweep drops buckets idle for a full window; they would be full again anyway.
func (r *InMemoryRateLimiter) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, b := range r.buckets {
		if now.Sub(b.lastSeen) > r.idle {
			delete(r.buckets, k)
		}
	}
}

// RateLimit returns a middleware that limits by client IP.
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			metrics.RateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msj": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
