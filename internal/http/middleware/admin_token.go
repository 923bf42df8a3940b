package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

const adminTokenHeader = "X-Admin-Token"
const adminTokenQuery = "token"

// AdminToken enforces a shared-secret token on read/export endpoints.
// The token is taken from the X-Admin-Token header or, for direct
// browser downloads, the token query parameter. When expected is empty,
// the middleware is a no-op.
func AdminToken(expected string) func(http.Handler) http.Handler {
	expected = strings.TrimSpace(expected)
	return func(next http.Handler) http.Handler {
		if expected == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(adminTokenHeader))
			if token == "" {
				token = strings.TrimSpace(r.URL.Query().Get(adminTokenQuery))
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
