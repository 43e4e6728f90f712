package handlers

import (
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemConfigHandler struct {
	configService *services.SystemConfigService
}

func NewSystemConfigHandler(db *gorm.DB) *SystemConfigHandler {
	return &SystemConfigHandler{
		configService: services.NewSystemConfigService(db),
	}
}

// GET /api/system-config/notifications
func (h *SystemConfigHandler) GetNotificationSettings(c *gin.Context) {
	response.Success(c, h.configService.GetNotificationSettings())
}

// PUT /api/system-config/notifications
func (h *SystemConfigHandler) UpdateNotificationSettings(c *gin.Context) {
	var req services.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.configService.UpdateNotificationSettings(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, h.configService.GetNotificationSettings())
}
