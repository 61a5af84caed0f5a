package middleware

import (
	"net/http"
	"strings"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/ctxkeys"
	"github.com/cheickthiam/portfolio/internal/service"
)

// RequireAdmin rejects requests without a valid bearer token and adds the
// admin id and session to the context.
func RequireAdmin(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				api.Fail(w, http.StatusUnauthorized, api.CodeNoToken, "No token provided")
				return
			}

			// Every failure cause answers with the same body
			claims, err := authService.Authenticate(token)
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, api.CodeInvalidToken, "Invalid or expired token")
				return
			}

			ctx := ctxkeys.WithAdminID(r.Context(), claims.AdminID)
			ctx = ctxkeys.WithSession(ctx, ctxkeys.Session{
				ID:        claims.ID,
				ExpiresAt: claims.ExpiresAt.Time,
			})
			next(w, r.WithContext(ctx))
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
