package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/ctxkeys"
)

// RateLimit allows limit requests per client IP within window and answers
// 429 beyond that. Counters are sliding windows kept by httprate.
//
//	login:   RateLimit(5, 15*time.Minute)
//	contact: RateLimit(3, time.Hour)
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return getClientIP(r), nil
		}),
		httprate.WithLimitHandler(tooManyRequests),
	)
}

// RateLimitPrefix applies a shared RateLimit to paths under prefix only.
func RateLimitPrefix(prefix string, limit int, window time.Duration) func(http.Handler) http.Handler {
	limiter := RateLimit(limit, window)
	return func(next http.Handler) http.Handler {
		limited := limiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	slog.Warn("rate limit exceeded",
		"ip", getClientIP(r),
		"path", r.URL.Path,
	)
	api.Fail(w, http.StatusTooManyRequests, api.CodeRateLimited, "Too many requests. Please try again later.")
}

// getClientIP returns the address rate limits and logs are keyed on: the
// X-Forwarded-For entry TrustProxyHops from the right, or RemoteAddr when no
// proxy is trusted.
func getClientIP(r *http.Request) string {
	hops := 0
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		hops = cfg.TrustProxyHops
	}

	if hops > 0 {
		var addrs []string
		for _, part := range strings.Split(r.Header.Get("X-Forwarded-For"), ",") {
			if part = strings.TrimSpace(part); part != "" {
				addrs = append(addrs, part)
			}
		}
		if len(addrs) > 0 {
			return addrs[max(len(addrs)-hops, 0)]
		}
	}

	// RemoteAddr without the port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return strings.Trim(ip, "[]")
}
