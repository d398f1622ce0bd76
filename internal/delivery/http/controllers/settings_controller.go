package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary      Read all site settings
// @Tags         settings
// @Produce      json
// @Success      200 {object} helpers.APIResponse
// @Router       /settings [get]
func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.GetAll(r.Context()))
}

// Update godoc
// @Summary      Replace the values of the given setting keys
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings body object true "Map of setting key to boolean or string value"
// @Success      200 {object} helpers.APIResponse
// @Failure      400 {object} helpers.APIResponse
// @Router       /admin/settings [put]
func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	var values map[string]domain.SettingValue
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "request body must be a JSON object of booleans and strings")
		return
	}
	if err := c.Service.SetAll(r.Context(), values); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save settings")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.GetAll(r.Context()))
}
