package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/application/service"
	"github.com/thangam/billing-api/internal/presentation/http/dto/request"
	"github.com/thangam/billing-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles retrieving all settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	response.OK(c, "Settings retrieved successfully", values)
}

// UpdateSettings handles storing a partial set of settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), req.Settings); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", nil)
}
