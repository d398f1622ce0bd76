package controllers

import (
	"log/slog"
	"net/http"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

// SaveCategoryRequest is the request body for POST /admin/categories.
type SaveCategoryRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (s SaveCategoryRequest) Validate() []string {
	if s.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CategoryService
}

func NewCategoryController(logger *slog.Logger, svc domain.CategoryService) *CategoryController {
	return &CategoryController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary      List category names
// @Tags         categories
// @Produce      json
// @Success      200 {object} helpers.APIResponse{data=[]string}
// @Router       /categories [get]
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Names(r.Context()))
}

// Save godoc
// @Summary      Create a category if it does not exist
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body SaveCategoryRequest true "Category name"
// @Success      201 {object} helpers.APIResponse
// @Failure      400 {object} helpers.APIResponse
// @Router       /admin/categories [post]
func (c *CategoryController) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SaveName(r.Context(), req.Name); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save category")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteName(r.Context(), r.PathValue("name")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not delete category")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
