package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-records-api/config"
	"clinic-records-api/internal/service"
	"clinic-records-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitPerClient(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 2})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	h := m.Limit(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1:1000"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send("10.0.0.1:1001"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once burst is spent, got %d", code)
	}
	if code := send("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("expected other client unaffected, got %d", code)
	}

	now = now.Add(time.Second)
	if code := send("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("expected token refill after 1s, got %d", code)
	}
}

func TestRateLimitSweepsIdleClients(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 1})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.allow("10.0.0.1")
	now = now.Add(limiterIdleTTL)
	m.allow("10.0.0.2")

	if _, ok := m.clients["10.0.0.1"]; ok {
		t.Error("expected idle client to be swept")
	}
	if len(m.clients) != 1 {
		t.Errorf("expected 1 tracked client, got %d", len(m.clients))
	}
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	sessions := service.NewMemorySessionStore()
	log := logrus.New()
	m := NewAuthMiddleware(jwtService, sessions, log)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "a@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var seen Identity
	h := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	send := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(""); code != http.StatusUnauthorized {
		t.Errorf("missing header: expected 401, got %d", code)
	}
	if code := send("Token " + token); code != http.StatusUnauthorized {
		t.Errorf("bad scheme: expected 401, got %d", code)
	}
	if code := send("Bearer " + token); code != http.StatusUnauthorized {
		t.Errorf("unregistered token: expected 401, got %d", code)
	}

	if err := sessions.Register(context.Background(), userID, tokenID, time.Minute); err != nil {
		t.Fatalf("register: %v", err)
	}
	if code := send("Bearer " + token); code != http.StatusOK {
		t.Fatalf("registered token: expected 200, got %d", code)
	}
	if seen.UserID != userID || seen.Email != "a@x.com" || seen.TokenID != tokenID {
		t.Errorf("unexpected identity %+v", seen)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := NewCORSMiddleware().Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the router")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/doctors", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected allow-origin header")
	}
}
