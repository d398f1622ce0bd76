package auth

import "net/http"

// Session cookie contract: the value is a fixed sentinel, not a token.
// Presence of the cookie with this exact value is what authorizes admin
// mutations; there is no signing and no server-side session state.
const (
	SessionCookieName  = "admin_session"
	SessionCookieValue = "true"
	sessionMaxAge      = 7 * 24 * 60 * 60
)

// IssueSessionCookie sets the admin session cookie, valid for 7 days.
// secure should be true in production so the cookie is HTTPS-only.
func IssueSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    SessionCookieValue,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the admin session cookie unconditionally.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// HasSession reports whether the request carries the session cookie with
// the expected sentinel value. Nothing else is verified.
func HasSession(r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == SessionCookieValue
}
