package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainVerifier(t *testing.T) {
	v := NewPlainVerifier("admin", "admin123")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "default credentials", username: "admin", password: "admin123", want: true},
		{name: "wrong password", username: "admin", password: "wrong", want: false},
		{name: "wrong username", username: "root", password: "admin123", want: false},
		{name: "both wrong", username: "root", password: "wrong", want: false},
		{name: "empty", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.username, tt.password))
		})
	}
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	v := NewBcryptVerifier("admin", string(hash))

	assert.True(t, v.Verify("admin", "admin123"))
	assert.False(t, v.Verify("admin", "wrong"))
	assert.False(t, v.Verify("root", "admin123"))
}

func TestSessionCookie(t *testing.T) {
	t.Run("issue sets sentinel with expected attributes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		IssueSessionCookie(rec, true)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, SessionCookieName, c.Name)
		assert.Equal(t, SessionCookieValue, c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, 604800, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ClearSessionCookie(rec, false)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
		assert.Empty(t, cookies[0].Value)
	})

	t.Run("has session checks the exact sentinel", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.False(t, HasSession(r))

		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tampered"})
		assert.False(t, HasSession(r))

		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		r2.AddCookie(&http.Cookie{Name: SessionCookieName, Value: SessionCookieValue})
		assert.True(t, HasSession(r2))
	})
}
