package handlers

import (
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/theme"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SiteSettingsHandler struct {
	settingsService *services.SiteSettingsService
}

func NewSiteSettingsHandler(db *gorm.DB, themes *theme.Table) *SiteSettingsHandler {
	return &SiteSettingsHandler{
		settingsService: services.NewSiteSettingsService(db, themes),
	}
}

type siteSettingsResponse struct {
	Settings *models.SiteSettings `json:"settings"`
	Palette  theme.Palette        `json:"palette"`
}

// Get returns the site settings with the resolved palette
// GET /api/site-settings
func (h *SiteSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, siteSettingsResponse{
		Settings: settings,
		Palette:  h.settingsService.PaletteFor(settings),
	})
}

// Update replaces the site settings
// PUT /api/site-settings
func (h *SiteSettingsHandler) Update(c *gin.Context) {
	var req services.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.settingsService.Update(&req)
	if err != nil {
		handleServiceError(c, err, "site settings not found")
		return
	}
	response.Success(c, siteSettingsResponse{
		Settings: settings,
		Palette:  h.settingsService.PaletteFor(settings),
	})
}

// ListThemes returns every selectable theme
// GET /api/themes
func (h *SiteSettingsHandler) ListThemes(c *gin.Context) {
	response.Success(c, h.settingsService.Themes())
}

// GetTheme returns one theme's palette. Unknown ids resolve to the fallback
// palette, as they do on the public site.
// GET /api/themes/:id
func (h *SiteSettingsHandler) GetTheme(c *gin.Context) {
	id := c.Param("id")
	palette := h.settingsService.ThemePalette(id)
	response.Success(c, gin.H{
		"id":      id,
		"palette": palette,
		"css":     theme.CSS(palette),
	})
}
