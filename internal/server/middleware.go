package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// cleanupInterval controls how often idle client limiters are evicted.
const cleanupInterval = 3 * time.Minute

// RateLimiter applies a per-client token bucket to incoming requests.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	logger  *zap.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// clientLimiter wraps one client's limiter with its last access time.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per second
// with the given burst per client IP, and starts background eviction
// of idle clients.
func NewRateLimiter(limit rate.Limit, burst int, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		logger:  logger,
		stop:    make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

// Allow reports whether a request from ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	c, ok := rl.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	limiter := c.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// Middleware wraps next with the rate limit check. Rejected requests
// get a 429 problem response.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.Allow(ip) {
			rl.logger.Warn("rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", r.URL.Path),
			)
			RateLimited(w, "request rate limit exceeded", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Stop terminates the background eviction.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle(cleanupInterval)
		case <-rl.stop:
			return
		}
	}
}

// evictIdle drops clients not seen within age.
func (rl *RateLimiter) evictIdle(age time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := time.Now().Add(-age)
	for ip, c := range rl.clients {
		if c.lastSeen.Before(threshold) {
			delete(rl.clients, ip)
		}
	}
}

// clientIP extracts the caller address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
