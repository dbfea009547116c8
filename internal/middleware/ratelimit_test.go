package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, limit int, clock *fakeClock) *RateLimiter {
	t.Helper()
	rl, err := New(limit, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(rl.Close)
	return rl
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		opts    []Option
		wantErr bool
	}{
		{name: "valid limit", limit: 30},
		{name: "zero limit", limit: 0, wantErr: true},
		{name: "negative limit", limit: -10, wantErr: true},
		{name: "zero window", limit: 5, opts: []Option{WithWindow(0)}, wantErr: true},
		{name: "custom window", limit: 5, opts: []Option{WithWindow(time.Second)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, err := New(tt.limit, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if rl != nil {
				rl.Close()
			}
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	clock := newFakeClock()
	rl := newLimiter(t, 3, clock)

	for i := range 3 {
		if ok, _ := rl.allow("10.0.0.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
		clock.Advance(10 * time.Second)
	}

	ok, retry := rl.allow("10.0.0.1")
	if ok {
		t.Fatal("4th request should be limited")
	}
	// The oldest request was 30s ago, so it leaves the window in 30s.
	if retry != 30 {
		t.Errorf("retry after = %d, want 30", retry)
	}

	clock.Advance(31 * time.Second)
	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Error("request should be allowed once the oldest entry expired")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	clock := newFakeClock()
	rl := newLimiter(t, 2, clock)
	handler := rl.Middleware(okHandler)

	do := func(method string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/v1/edges", nil)
		req.RemoteAddr = "192.0.2.7:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := range 2 {
		if rec := do(http.MethodPost); rec.Code != http.StatusOK {
			t.Fatalf("POST %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := do(http.MethodDelete)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	if !strings.Contains(rec.Body.String(), "Rate limit exceeded") {
		t.Errorf("body = %q", rec.Body.String())
	}

	// Reads are never limited.
	for range 5 {
		if rec := do(http.MethodGet); rec.Code != http.StatusOK {
			t.Fatalf("GET status = %d, want 200", rec.Code)
		}
	}
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := newLimiter(t, 1, newFakeClock())

	if ok, _ := rl.allow("198.51.100.1"); !ok {
		t.Fatal("first IP should be allowed")
	}
	if ok, _ := rl.allow("198.51.100.2"); !ok {
		t.Fatal("second IP has its own budget")
	}
	if ok, _ := rl.allow("198.51.100.1"); ok {
		t.Fatal("first IP should now be limited")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := newFakeClock()
	rl := newLimiter(t, 5, clock)

	rl.allow("203.0.113.1")
	clock.Advance(30 * time.Second)
	rl.allow("203.0.113.2")
	clock.Advance(45 * time.Second)

	rl.cleanup()
	if got := rl.tracked(); got != 1 {
		t.Errorf("tracked IPs = %d, want 1", got)
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl := newLimiter(t, 50, newFakeClock())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.allow("10.1.1.1"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("allowed = %d, want 50", allowed)
	}
}

func TestRateLimiter_MultipleClose(t *testing.T) {
	rl, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	rl.Close()
	rl.Close()
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{name: "forwarded for single", xff: "203.0.113.5", remoteAddr: "10.0.0.1:1", want: "203.0.113.5"},
		{name: "forwarded for chain", xff: "203.0.113.5, 10.0.0.2", remoteAddr: "10.0.0.1:1", want: "203.0.113.5"},
		{name: "garbage forwarded for falls back", xff: "not-an-ip", xri: "198.51.100.9", remoteAddr: "10.0.0.1:1", want: "198.51.100.9"},
		{name: "real ip", xri: " 198.51.100.9 ", remoteAddr: "10.0.0.1:1", want: "198.51.100.9"},
		{name: "ipv4-mapped ipv6 is unmapped", xff: "::ffff:192.0.2.1", remoteAddr: "10.0.0.1:1", want: "192.0.2.1"},
		{name: "remote addr", remoteAddr: "192.0.2.44:8080", want: "192.0.2.44"},
		{name: "remote addr ipv6", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.44", want: "192.0.2.44"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ExtractIP(req); got != tt.want {
				t.Errorf("ExtractIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
