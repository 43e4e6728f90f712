package handlers

import (
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/storage"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	uploads        *Uploads
}

func NewProfileHandler(db *gorm.DB, uploads *Uploads) *ProfileHandler {
	return &ProfileHandler{
		profileService: services.NewProfileService(db),
		uploads:        uploads,
	}
}

// Get returns the owner profile
// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// Update replaces the editable profile fields
// PUT /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Update(&req)
	if err != nil {
		handleServiceError(c, err, "profile not found")
		return
	}
	response.Success(c, profile)
}

// Upload stores a CV, profile image or favicon
// POST /api/profile/upload/:kind
func (h *ProfileHandler) Upload(c *gin.Context) {
	kind, err := storage.ParseKind(c.Param("kind"))
	if err != nil || kind == storage.KindProject {
		response.BadRequest(c, "unsupported upload kind")
		return
	}

	url, ok := h.uploads.save(c, kind)
	if !ok {
		return
	}

	profile, err := h.profileService.SetAsset(kind, url)
	if err != nil {
		handleServiceError(c, err, "profile not found")
		return
	}
	response.Success(c, profile)
}
