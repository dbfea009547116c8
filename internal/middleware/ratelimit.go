package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	defaultWindow   = time.Minute
	cleanupInterval = time.Minute
)

// RateLimiter caps mutating requests per client IP over a sliding window.
// Reads pass through untouched.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	requests map[string][]time.Time

	cleanupDone chan struct{}
	closeOnce   sync.Once
}

// Option configures a RateLimiter.
type Option func(*RateLimiter)

// WithWindow overrides the one-minute window.
func WithWindow(d time.Duration) Option {
	return func(rl *RateLimiter) {
		rl.window = d
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// WithLogger sets a custom logger for the limiter.
func WithLogger(logger *slog.Logger) Option {
	return func(rl *RateLimiter) {
		rl.logger = logger
	}
}

// New creates a limiter allowing limit mutations per window per IP.
// Close must be called to stop the cleanup goroutine.
func New(limit int, opts ...Option) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}

	rl := &RateLimiter{
		limit:       limit,
		window:      defaultWindow,
		now:         time.Now,
		logger:      slog.Default(),
		requests:    make(map[string][]time.Time),
		cleanupDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}
	if rl.window <= 0 {
		return nil, fmt.Errorf("rate limit window must be positive, got %s", rl.window)
	}

	go rl.cleanupLoop()

	rl.logger.Info("rate limiter initialized", "limit", limit, "window", rl.window.String())
	return rl, nil
}

// Middleware wraps next with the limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isMutation(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ip := ExtractIP(r)
		if ip == "" {
			rl.logger.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		allowed, retryAfter := rl.allow(ip)
		if !allowed {
			rl.logger.Debug("rate limit exceeded", "ip", ip, "path", r.URL.Path, "limit", rl.limit)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow records a request from ip if it fits the window. When it does not,
// the second result is the whole number of seconds until the oldest request
// in the window expires, at least 1.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := inWindow(rl.requests[ip], cutoff)
	if len(recent) >= rl.limit {
		wait := int((rl.window - now.Sub(recent[0])).Seconds())
		return false, max(wait, 1)
	}

	rl.requests[ip] = append(recent, now)
	return true, 0
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.cleanupDone:
			return
		}
	}
}

// cleanup drops IPs with no requests inside the window.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, timestamps := range rl.requests {
		recent := inWindow(timestamps, cutoff)
		if len(recent) == 0 {
			delete(rl.requests, ip)
			continue
		}
		rl.requests[ip] = recent
	}
}

func inWindow(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// tracked returns the number of IPs currently held.
func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.requests)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.cleanupDone)
	})
}
