// internal/app/system/ratelimit/ratelimit.go

// Package ratelimit provides a fixed-window request limiter and client
// IP extraction. The limiter guards the login endpoint against
// credential stuffing; ClientIP is also used by analytics ingestion.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter counts requests per key in fixed windows. Safe for concurrent
// use. Expired windows are swept lazily from Allow, so a Limiter owns no
// goroutine and needs no shutdown.
type Limiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	duration  time.Duration
	lastSweep time.Time
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per duration per key.
func New(limit int, duration time.Duration) *Limiter {
	return &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
	}
}

// Allow reports whether a request for key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops expired windows at most once per two durations. Caller
// must hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.duration*2 {
		return
	}
	l.lastSweep = now
	for key, w := range l.windows {
		if now.After(w.expiresAt) {
			delete(l.windows, key)
		}
	}
}

// Reset clears the window for key. Called after a successful login so a
// user who finally got their password right is not still penalized.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// LoginLimiter tracks login attempts by both client IP and target email,
// so neither a single IP hammering many accounts nor many IPs hammering
// one account slips through.
type LoginLimiter struct {
	ip    *Limiter
	email *Limiter
}

// NewLoginLimiter returns a limiter with login-appropriate defaults:
// 10 attempts per IP per minute, 5 per email per 5 minutes.
func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		ip:    New(10, time.Minute),
		email: New(5, 5*time.Minute),
	}
}

// Check reports whether a login attempt should proceed, with a
// caller-safe reason when blocked.
func (ll *LoginLimiter) Check(r *http.Request, email string) (bool, string) {
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}
	if email != "" && !ll.email.Allow(strings.ToLower(strings.TrimSpace(email))) {
		return false, "Too many login attempts for this account. Please wait a few minutes."
	}
	return true, ""
}

// ResetEmail clears the per-email window after a successful login.
func (ll *LoginLimiter) ResetEmail(email string) {
	if email != "" {
		ll.email.Reset(strings.ToLower(strings.TrimSpace(email)))
	}
}

// ClientIP extracts the client IP, honoring X-Forwarded-For and
// X-Real-IP from fronting proxies before falling back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
