package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// SaveTeamMemberRequest is the request body for POST /admin/team.
// Omitted focus fields fall back to the default crop.
type SaveTeamMemberRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Image    string  `json:"image"`
	FocusX   *int    `json:"focus_x"`
	FocusY   *int    `json:"focus_y"`
	Quote    *string `json:"quote"`
	IsSenior bool    `json:"is_senior"`
}

// Validate implements Validator.
func (s SaveTeamMemberRequest) Validate() []string {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if s.Role == "" {
		errs = append(errs, "role is required")
	}
	if s.FocusX != nil && (*s.FocusX < 0 || *s.FocusX > 100) {
		errs = append(errs, "focus_x must be between 0 and 100")
	}
	if s.FocusY != nil && (*s.FocusY < 0 || *s.FocusY > 100) {
		errs = append(errs, "focus_y must be between 0 and 100")
	}
	return errs
}

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *TeamController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.List(r.Context()))
}

func (c *TeamController) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveTeamMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member := &domain.TeamMember{
		ID:       req.ID,
		Name:     req.Name,
		Role:     req.Role,
		Image:    req.Image,
		FocusX:   req.FocusX,
		FocusY:   req.FocusY,
		Quote:    req.Quote,
		IsSenior: req.IsSenior,
	}
	if err := c.Service.Save(r.Context(), member); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team member not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save team member")
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, member)
}

func (c *TeamController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteByID(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team member not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not delete team member")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
