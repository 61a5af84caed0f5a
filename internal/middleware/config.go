package middleware

import (
	"net/http"

	"github.com/cheickthiam/portfolio/internal/config"
	"github.com/cheickthiam/portfolio/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request context.
// The error responder reads the environment from it.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
