package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cheickthiam/portfolio/internal/config"
	"github.com/cheickthiam/portfolio/internal/ctxkeys"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/service"
	"github.com/cheickthiam/portfolio/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Status string `json:"status"`
		Code   string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	return body.Code
}

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func created(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusCreated)
}

func TestRequireAdmin(t *testing.T) {
	tracker := session.NewTracker(10 * time.Minute)
	auth := service.NewAuthService(nil, tracker, "test-secret", time.Hour)
	other := service.NewAuthService(nil, tracker, "other-secret", time.Hour)

	token, claims, err := auth.GenerateJWT(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)
	forged, _, err := other.GenerateJWT(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)

	var seenAdmin string
	var seenSession ctxkeys.Session
	h := RequireAdmin(auth)(func(w http.ResponseWriter, r *http.Request) {
		seenAdmin = ctxkeys.AdminID(r.Context())
		seenSession, _ = ctxkeys.SessionOf(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, "NoToken"},
		{"not bearer", "Basic " + token, http.StatusUnauthorized, "NoToken"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "NoToken"},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, "InvalidOrExpiredToken"},
		{"wrong secret", "Bearer " + forged, http.StatusUnauthorized, "InvalidOrExpiredToken"},
		{"valid", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, rec))
			}
		})
	}

	assert.Equal(t, "admin-1", seenAdmin)
	assert.Equal(t, claims.ID, seenSession.ID)
}

func TestRequireAdmin_LoggedOutTokenRejected(t *testing.T) {
	auth := service.NewAuthService(nil, session.NewTracker(10*time.Minute), "test-secret", time.Hour)
	token, claims, err := auth.GenerateJWT(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)

	auth.Logout(claims.ID, claims.ExpiresAt.Time)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	RequireAdmin(auth)(ok)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "InvalidOrExpiredToken", errorCode(t, rec))
}

func withHops(hops int) func(http.Handler) http.Handler {
	return Config(&config.Config{AppEnv: "test", TrustProxyHops: hops})
}

func TestRateLimit_PerIP(t *testing.T) {
	h := RateLimit(5, 15*time.Minute)(http.HandlerFunc(ok))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remote + ":4321"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, send("203.0.113.7"), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("203.0.113.8"))
}

func TestRateLimit_IgnoresRotatedForwardedFor(t *testing.T) {
	tests := []struct {
		name string
		hops int
		xff  func(i int) string
	}{
		{"no trusted proxy", 0, func(i int) string { return fmt.Sprintf("10.0.0.%d", i) }},
		{"one trusted proxy", 1, func(i int) string { return fmt.Sprintf("10.0.0.%d, 203.0.113.7", i) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Chain(http.HandlerFunc(created), withHops(tt.hops), RateLimit(3, time.Hour))

			var codes []int
			for i := 0; i < 6; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
				req.RemoteAddr = "192.0.2.1:1234"
				req.Header.Set("X-Forwarded-For", tt.xff(i))
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				codes = append(codes, rec.Code)
			}
			assert.Equal(t, []int{201, 201, 201, 429, 429, 429}, codes)
		})
	}
}

func TestRateLimitPrefix_OnlyAPI(t *testing.T) {
	h := RateLimitPrefix("/api/", 1, time.Minute)(http.HandlerFunc(ok))

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	assert.Equal(t, http.StatusOK, serve("/api/projects").Code)
	limited := serve("/api/projects")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "RateLimited", errorCode(t, limited))

	assert.Equal(t, http.StatusOK, serve("/health").Code)
	assert.Equal(t, http.StatusOK, serve("/health").Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		hops   int
		remote string
		xff    string
		want   string
	}{
		{"remote addr", 0, "192.0.2.10:5555", "", "192.0.2.10"},
		{"ipv6 remote addr", 0, "[2001:db8::1]:5555", "", "2001:db8::1"},
		{"forwarded header ignored without trust", 0, "192.0.2.10:5555", "198.51.100.9", "192.0.2.10"},
		{"one hop takes rightmost", 1, "10.0.0.2:5555", "6.6.6.6, 198.51.100.9", "198.51.100.9"},
		{"two hops", 2, "10.0.0.2:5555", "6.6.6.6, 198.51.100.9, 10.0.0.1", "198.51.100.9"},
		{"more hops than entries", 3, "10.0.0.2:5555", "198.51.100.9", "198.51.100.9"},
		{"trusted but no header", 1, "192.0.2.10:5555", "", "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := withHops(tt.hops)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = getClientIP(r)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitize_StripsOperatorKeys(t *testing.T) {
	var got map[string]any
	var query string
	h := Sanitize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))

	body := `{"email":{"$ne":null},"password":"x","nested":[{"a.b":1,"ok":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login?$where=1&page=2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "page=2", query)
	assert.Equal(t, map[string]any{}, got["email"])
	assert.Equal(t, "x", got["password"])
	assert.Equal(t, []any{map[string]any{"ok": float64(2)}}, got["nested"])
}

func TestSanitize_LeavesInvalidAndNonJSONBodies(t *testing.T) {
	var seen string
	h := Sanitize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = string(b)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"$broken`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, `{"$broken`, seen)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`$raw=1`))
	req.Header.Set("Content-Type", "text/plain")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, `$raw=1`, seen)
}

func TestSanitize_OversizedBodyIsJSONError(t *testing.T) {
	called := false
	h := Sanitize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	body := `{"message":"` + strings.Repeat("a", MaxJSONBody) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "ValidationError", errorCode(t, rec))
}

func TestRecover(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	serve := func(env string) map[string]any {
		h := Chain(panicky, Config(&config.Config{AppEnv: env}), Recover)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	dev := serve("development")
	assert.Equal(t, "boom", dev["message"])
	assert.NotEmpty(t, dev["stack"])

	prod := serve("production")
	assert.Equal(t, "Internal Server Error", prod["message"])
	assert.Nil(t, prod["stack"])
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://cheickthiam.com"})(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://cheickthiam.com")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://cheickthiam.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(http.HandlerFunc(ok), mw("a"), mw("b"), mw("c")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}
