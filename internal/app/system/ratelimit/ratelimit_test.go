// internal/app/system/ratelimit/ratelimit_test.go

package ratelimit

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowBlocksAtLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("key"), "attempt %d should pass", i+1)
	}
	assert.False(t, l.Allow("key"))

	// Other keys have their own window.
	assert.True(t, l.Allow("other"))
}

func TestAllowStartsFreshWindowAfterExpiry(t *testing.T) {
	l := New(1, 20*time.Millisecond)

	require.True(t, l.Allow("key"))
	require.False(t, l.Allow("key"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("key"))
}

func TestResetClearsWindow(t *testing.T) {
	l := New(1, time.Minute)

	require.True(t, l.Allow("key"))
	require.False(t, l.Allow("key"))

	l.Reset("key")
	assert.True(t, l.Allow("key"))
}

func TestAllowSweepsExpiredWindows(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	for i := 0; i < 5; i++ {
		l.Allow(fmt.Sprintf("stale-%d", i))
	}

	// Past two durations the next Allow prunes everything expired.
	time.Sleep(25 * time.Millisecond)
	l.Allow("fresh")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.windows, 1)
	assert.Contains(t, l.windows, "fresh")
}

func TestLoginLimiterChecksIPAndEmail(t *testing.T) {
	ll := NewLoginLimiter()

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:51234"

	for i := 0; i < 5; i++ {
		ok, _ := ll.Check(req, "admin@example.com")
		require.True(t, ok, "attempt %d should pass", i+1)
	}
	ok, msg := ll.Check(req, "admin@example.com")
	assert.False(t, ok)
	assert.Contains(t, msg, "this account")

	ll.ResetEmail("Admin@Example.com")
	ok, _ = ll.Check(req, "admin@example.com")
	assert.True(t, ok)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.1:8080", want: "192.0.2.1"},
		{name: "forwarded for first hop", remoteAddr: "10.0.0.1:80", xff: "203.0.113.9, 10.0.0.1", want: "203.0.113.9"},
		{name: "real ip", remoteAddr: "10.0.0.1:80", xri: "198.51.100.4", want: "198.51.100.4"},
		{name: "no port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
