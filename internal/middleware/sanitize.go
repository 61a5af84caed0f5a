package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/cheickthiam/portfolio/internal/api"
)

// MaxJSONBody caps JSON request bodies.
const MaxJSONBody = 10 << 20

// Sanitize strips operator-like keys (leading "$" or containing ".") from
// the query string and from JSON request bodies so user input can never
// reach a document store as a query operator.
func Sanitize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		dirty := false
		for key := range query {
			if unsafeKey(key) {
				query.Del(key)
				dirty = true
			}
		}
		if dirty {
			r.URL.RawQuery = query.Encode()
		}

		if r.Body != nil && isJSON(r) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxJSONBody))
			_ = r.Body.Close()
			if err != nil {
				api.Fail(w, http.StatusRequestEntityTooLarge, api.CodeValidation, "request body too large")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(sanitizeJSON(body)))
			r.ContentLength = -1
		}

		next.ServeHTTP(w, r)
	})
}

// sanitizeJSON returns body with unsafe keys removed. Invalid JSON is
// returned unchanged for the handler to reject.
func sanitizeJSON(body []byte) []byte {
	var v any
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &v) != nil {
		return body
	}
	if !stripKeys(v) {
		return body
	}
	clean, err := json.Marshal(v)
	if err != nil {
		slog.Warn("sanitize: re-encode failed", "error", err)
		return body
	}
	return clean
}

func stripKeys(v any) bool {
	changed := false
	switch t := v.(type) {
	case map[string]any:
		for key, child := range t {
			if unsafeKey(key) {
				delete(t, key)
				changed = true
				continue
			}
			if stripKeys(child) {
				changed = true
			}
		}
	case []any:
		for _, child := range t {
			if stripKeys(child) {
				changed = true
			}
		}
	}
	return changed
}

func unsafeKey(key string) bool {
	return strings.HasPrefix(key, "$") || strings.Contains(key, ".")
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
