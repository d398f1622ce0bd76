package controllers

import (
	"log/slog"
	"net/http"

	"munsociety/internal/adapters/auth"
	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Username == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// AuthController issues and clears the admin session cookie. SecureCookies
// should be true in production so the cookie is HTTPS-only.
type AuthController struct {
	Logger        *slog.Logger
	Service       domain.AuthService
	SecureCookies bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, secureCookies bool) *AuthController {
	return &AuthController{
		Logger:        logger,
		Service:       svc,
		SecureCookies: secureCookies,
	}
}

// Login godoc
// @Summary      Authenticate as the site administrator
// @Description  On success the response sets the admin session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Admin credentials"
// @Success      200 {object} helpers.APIResponse
// @Failure      400 {object} helpers.APIResponse
// @Failure      401 {object} helpers.APIResponse
// @Router       /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Service.Login(r.Context(), req.Username, req.Password) {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
		return
	}
	auth.IssueSessionCookie(w, c.SecureCookies)
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout clears the session cookie. Always succeeds, authenticated or not.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, c.SecureCookies)
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// Session reports whether the caller holds a valid admin session. It sits
// behind the admin middleware, so reaching it means the answer is yes.
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"authenticated": true})
}
