package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// SavePublicationRequest is the request body for POST /admin/publications.
// Tags keep their order and may repeat; titles are not unique.
type SavePublicationRequest struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content *string  `json:"content"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
	Type    string   `json:"type"`
	Image   *string  `json:"image"`
}

// Validate implements Validator.
func (s SavePublicationRequest) Validate() []string {
	var errs []string
	if s.Title == "" {
		errs = append(errs, "title is required")
	}
	if s.Author == "" {
		errs = append(errs, "author is required")
	}
	if s.Date == "" {
		errs = append(errs, "date is required")
	}
	return errs
}

type PublicationController struct {
	Logger  *slog.Logger
	Service domain.PublicationService
}

func NewPublicationController(logger *slog.Logger, svc domain.PublicationService) *PublicationController {
	return &PublicationController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *PublicationController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.List(r.Context()))
}

func (c *PublicationController) Get(w http.ResponseWriter, r *http.Request) {
	pub, ok := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "publication not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pub)
}

// Save godoc
// @Summary Create or update a publication
// @Tags publications
// @Accept json
// @Produce json
// @Param publication body SavePublicationRequest true "Publication data"
// @Success 200 {object} helpers.APIResponse "data contains the saved publication"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/publications [post]
func (c *PublicationController) Save(w http.ResponseWriter, r *http.Request) {
	var req SavePublicationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	pub := &domain.Publication{
		ID:      req.ID,
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Author:  req.Author,
		Date:    req.Date,
		Tags:    tags,
		Type:    req.Type,
		Image:   req.Image,
	}
	if err := c.Service.Save(r.Context(), pub); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "publication not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save publication")
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, pub)
}

func (c *PublicationController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteByID(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "publication not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not delete publication")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
