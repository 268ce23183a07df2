// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter provides rate limiting using fixed per-key windows.
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // max requests per window
	duration time.Duration // window duration
	cleanup  time.Duration // how often to clean old entries
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a new rate limiter.
// limit: maximum requests allowed per duration
// duration: the time window for counting requests
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2, // cleanup entries older than 2x duration
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow checks if a request from the given key should be allowed.
// Returns true if allowed, false if rate limited.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.windows[key]

	// If no window exists or window expired, create new one
	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{
			count:     1,
			expiresAt: now.Add(l.duration),
		}
		return true
	}

	// Window still active - check limit
	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// Reset clears the rate limit for a specific key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// cleanupLoop periodically removes expired entries to prevent memory leaks.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, w := range l.windows {
		if now.After(w.expiresAt) {
			delete(l.windows, key)
		}
	}
}

// Stop ends the cleanup goroutine. The limiter still answers Allow.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// ClientIP returns the host part of r.RemoteAddr. Forwarded headers are
// client-controlled and are not read here; behind a trusted proxy the router
// installs chi's middleware.RealIP, which rewrites RemoteAddr first.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}

// FormLimiter throttles public form posts with a per-IP limit and, when
// the form carries one, a per-email limit.
type FormLimiter struct {
	ipLimiter    *Limiter
	emailLimiter *Limiter
}

// NewFormLimiter creates a limiter allowing perHour posts per IP per hour
// and half that (at least one) per email address.
func NewFormLimiter(perHour int) *FormLimiter {
	if perHour < 1 {
		perHour = 1
	}
	perEmail := perHour / 2
	if perEmail < 1 {
		perEmail = 1
	}
	return &FormLimiter{
		ipLimiter:    New(perHour, time.Hour),
		emailLimiter: New(perEmail, time.Hour),
	}
}

// Check verifies whether a form post should be accepted.
// Returns (allowed, reason) where reason explains why it was blocked.
func (fl *FormLimiter) Check(r *http.Request, email string) (bool, string) {
	if !fl.ipLimiter.Allow(ClientIP(r)) {
		return false, "You've sent several enquiries recently. Please try again later."
	}
	if email != "" {
		if !fl.emailLimiter.Allow(strings.ToLower(strings.TrimSpace(email))) {
			return false, "We've already received enquiries from this email address. We'll be in touch soon."
		}
	}
	return true, ""
}

// Stop ends both cleanup goroutines.
func (fl *FormLimiter) Stop() {
	fl.ipLimiter.Stop()
	fl.emailLimiter.Stop()
}

// Login attempt limits. The site-wide limit caps attempts on the single
// admin credential whatever address they come from.
const (
	LoginPerIPPerMinute  = 10
	LoginGlobalPerMinute = 30
	loginGlobalKey       = "admin"
)

// LoginLimiter throttles admin sign-in attempts per client IP and across
// all clients.
type LoginLimiter struct {
	ipLimiter     *Limiter
	globalLimiter *Limiter
}

// NewLoginLimiter allows LoginPerIPPerMinute attempts per IP and
// LoginGlobalPerMinute attempts in total per minute.
func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		ipLimiter:     New(LoginPerIPPerMinute, time.Minute),
		globalLimiter: New(LoginGlobalPerMinute, time.Minute),
	}
}

// Check reports whether another sign-in attempt is allowed.
func (ll *LoginLimiter) Check(r *http.Request) (bool, string) {
	if !ll.ipLimiter.Allow(ClientIP(r)) {
		return false, "Too many sign-in attempts. Please wait a minute before trying again."
	}
	if !ll.globalLimiter.Allow(loginGlobalKey) {
		return false, "Sign-in is temporarily paused after many failed attempts. Please try again shortly."
	}
	return true, ""
}

// Reset clears the per-IP limit after a successful sign-in. The site-wide
// window is left to expire on its own.
func (ll *LoginLimiter) Reset(r *http.Request) {
	ll.ipLimiter.Reset(ClientIP(r))
}

// Stop ends the cleanup goroutines.
func (ll *LoginLimiter) Stop() {
	ll.ipLimiter.Stop()
	ll.globalLimiter.Stop()
}
