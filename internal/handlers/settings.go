// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/warehouse414/catalog-backend/internal/services"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

type updateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GET /admin/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, settings)
}

// PUT /admin/settings/:key
func (h *SettingsHandler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.BadRequestResponse(c, "Setting key is required", nil)
		return
	}

	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	setting, err := h.settingsService.Set(key, req.Value)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, setting)
}
