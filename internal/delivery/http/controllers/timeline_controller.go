package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// SaveTimelineEntryRequest is the request body for POST /admin/timeline.
type SaveTimelineEntryRequest struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Validate implements Validator.
func (s SaveTimelineEntryRequest) Validate() []string {
	var errs []string
	if s.Year == "" {
		errs = append(errs, "year is required")
	}
	if s.Title == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

type TimelineController struct {
	Logger  *slog.Logger
	Service domain.TimelineService
}

func NewTimelineController(logger *slog.Logger, svc domain.TimelineService) *TimelineController {
	return &TimelineController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *TimelineController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.List(r.Context()))
}

func (c *TimelineController) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveTimelineEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry := &domain.TimelineEntry{
		ID:          req.ID,
		Year:        req.Year,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := c.Service.Save(r.Context(), entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "timeline entry not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save timeline entry")
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, entry)
}

func (c *TimelineController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteByID(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "timeline entry not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not delete timeline entry")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
