package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		errs = append(errs, "a valid email is required")
	}
	if c.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary      Send a contact form message to the society inbox
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message body ContactRequest true "Contact message"
// @Success      200 {object} helpers.APIResponse
// @Failure      400 {object} helpers.APIResponse
// @Failure      502 {object} helpers.APIResponse
// @Router       /contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := c.Service.Submit(r.Context(), msg); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, "could not deliver message")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"sent": true})
}
