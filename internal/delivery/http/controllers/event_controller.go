package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// SaveEventRequest is the request body for POST /admin/events. An empty id
// creates a new event; a non-empty id updates the existing one in place.
// Timestamps are always server-set and never accepted from the client.
type SaveEventRequest struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Date                 string     `json:"date"`
	Location             string     `json:"location"`
	Description          string     `json:"description"`
	Status               string     `json:"status"`
	RegistrationLink     *string    `json:"registration_link"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	Fee                  *string    `json:"fee"`
	IsFeatured           bool       `json:"is_featured"`
}

// Validate implements Validator. Status must be one of the closed set;
// out-of-range values are rejected rather than coerced.
func (s SaveEventRequest) Validate() []string {
	var errs []string
	if s.Title == "" {
		errs = append(errs, "title is required")
	}
	if s.Date == "" {
		errs = append(errs, "date is required")
	}
	if !domain.ValidEventStatus(domain.EventStatus(s.Status)) {
		errs = append(errs, "status must be one of \"Open\", \"Closed\", \"Completed\", \"Upcoming\"")
	}
	return errs
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List events
// @Description Returns all events ordered by date, newest first. On a storage failure the list is empty, never an error.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.List(r.Context()))
}

// Get godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, ok := c.Service.GetByID(r.Context(), id)
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Save godoc
// @Summary Create or update an event
// @Description Inserts when no id is supplied, updates in place otherwise. The public and admin event listings are revalidated on success.
// @Tags events
// @Accept json
// @Produce json
// @Param event body SaveEventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains the saved event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		ID:                   req.ID,
		Title:                req.Title,
		Date:                 req.Date,
		Location:             req.Location,
		Description:          req.Description,
		Status:               domain.EventStatus(req.Status),
		RegistrationLink:     req.RegistrationLink,
		RegistrationDeadline: req.RegistrationDeadline,
		Fee:                  req.Fee,
		IsFeatured:           req.IsFeatured,
	}
	if err := c.Service.Save(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save event")
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not delete event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
