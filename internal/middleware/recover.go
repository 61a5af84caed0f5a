package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/cheickthiam/portfolio/internal/api"
)

// Recover turns a handler panic into a 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			api.Panic(w, r, rec, debug.Stack())
		}()
		next.ServeHTTP(w, r)
	})
}
