package middleware

import (
	"net/http"

	"munsociety/internal/adapters/auth"
	h "munsociety/internal/delivery/http/helpers"
)

// RequireAdmin returns a wrapper that admits a request only when it carries
// the admin session cookie with the expected sentinel value. The cookie is
// not re-verified against the credential; its presence is the whole check.
// Without it the wrapper responds 401 and does not call next.
func RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !auth.HasSession(r) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "admin session required")
				return
			}
			next(w, r)
		}
	}
}
