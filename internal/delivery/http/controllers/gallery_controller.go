package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// SaveGalleryImageRequest is the request body for POST /admin/gallery.
type SaveGalleryImageRequest struct {
	ID       string `json:"id"`
	Src      string `json:"src"`
	Category string `json:"category"`
	Size     string `json:"size"`
}

// Validate implements Validator. Size must be one of the closed tile set.
func (s SaveGalleryImageRequest) Validate() []string {
	var errs []string
	if s.Src == "" {
		errs = append(errs, "src is required")
	}
	if !domain.ValidImageSize(domain.ImageSize(s.Size)) {
		errs = append(errs, "size must be one of \"small\", \"wide\", \"tall\", \"large\"")
	}
	return errs
}

type GalleryController struct {
	Logger  *slog.Logger
	Service domain.GalleryService
}

func NewGalleryController(logger *slog.Logger, svc domain.GalleryService) *GalleryController {
	return &GalleryController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.List(r.Context()))
}

func (c *GalleryController) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveGalleryImageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	img := &domain.GalleryImage{
		ID:       req.ID,
		Src:      req.Src,
		Category: req.Category,
		Size:     domain.ImageSize(req.Size),
	}
	if err := c.Service.Save(r.Context(), img); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "gallery image not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save gallery image")
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, img)
}

func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteByID(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "gallery image not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not delete gallery image")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
