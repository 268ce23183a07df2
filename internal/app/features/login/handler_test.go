package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/homestay/internal/app/features/errors"
	"github.com/dalemusser/homestay/internal/app/features/login"
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

const testPassword = "harbour-view-42"

func newTestHandler(t *testing.T, hash string) (*login.Handler, *auth.SessionManager) {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", time.Hour, false, logger)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	limiter := ratelimit.NewLoginLimiter()
	t.Cleanup(limiter.Stop)
	return login.NewHandler(hash, sm, limiter, uierrors.NewErrorLogger(logger), logger), sm
}

func testHash(t *testing.T) string {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return hash
}

func postLogin(password, ret string) *http.Request {
	form := url.Values{"password": {password}, "return": {ret}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "198.51.100.7:51000"
	return req
}

func serve(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			// Template rendering may panic in tests - that's expected
		}
	}()
	fn()
}

func TestHandleLoginPost_CorrectPassword_SignsIn(t *testing.T) {
	h, sm := newTestHandler(t, testHash(t))

	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, postLogin(testPassword, ""))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location: got %q, want %q", loc, "/dashboard")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	// The issued cookie must carry an admin session.
	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	var gotAdmin bool
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdmin = auth.IsAdmin(r)
	})).ServeHTTP(httptest.NewRecorder(), req)
	if !gotAdmin {
		t.Error("session cookie did not sign in an admin")
	}
}

func TestHandleLoginPost_ExternalReturnIgnored(t *testing.T) {
	h, _ := newTestHandler(t, testHash(t))

	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, postLogin(testPassword, "https://evil.example.com/steal"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); strings.Contains(loc, "evil.example.com") {
		t.Errorf("redirected off-site to %q", loc)
	}
}

func TestHandleLoginPost_WrongPassword(t *testing.T) {
	h, _ := newTestHandler(t, testHash(t))

	rec := httptest.NewRecorder()
	serve(func() { h.HandleLoginPost(rec, postLogin("not-it", "")) })

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			t.Error("failed login must not issue a session cookie")
		}
	}
}

func TestHandleLoginPost_NotConfigured(t *testing.T) {
	h, _ := newTestHandler(t, "")

	rec := httptest.NewRecorder()
	serve(func() { h.HandleLoginPost(rec, postLogin("anything", "")) })

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandleLoginPost_RateLimited(t *testing.T) {
	h, _ := newTestHandler(t, testHash(t))

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		serve(func() { h.HandleLoginPost(rec, postLogin("wrong", "")) })
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: got %d, want %d", i+1, rec.Code, http.StatusUnauthorized)
		}
	}

	rec := httptest.NewRecorder()
	serve(func() { h.HandleLoginPost(rec, postLogin(testPassword, "")) })
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestServeLoginForm_AdminRedirected(t *testing.T) {
	h, _ := newTestHandler(t, testHash(t))

	req := httptest.NewRequest("GET", "/login", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{Name: "Site admin", Role: auth.RoleAdmin})
	rec := httptest.NewRecorder()
	h.ServeLoginForm(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location: got %q, want %q", loc, "/dashboard")
	}
}
