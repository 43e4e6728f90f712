package handlers

import (
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExperienceHandler struct {
	experienceService *services.ExperienceService
}

func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: services.NewExperienceService(db),
	}
}

// List returns experiences, newest start date first
// GET /api/experiences
func (h *ExperienceHandler) List(c *gin.Context) {
	items, err := h.experienceService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// GET /api/experiences/:id
func (h *ExperienceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "experience")
	if !ok {
		return
	}

	item, err := h.experienceService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "experience not found")
		return
	}
	response.Success(c, item)
}

// POST /api/experiences
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req services.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.experienceService.Create(&req)
	if err != nil {
		handleServiceError(c, err, "experience not found")
		return
	}
	response.Created(c, item)
}

// PUT /api/experiences/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "experience")
	if !ok {
		return
	}

	var req services.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.experienceService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err, "experience not found")
		return
	}
	response.Success(c, item)
}

// DELETE /api/experiences/:id
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "experience")
	if !ok {
		return
	}

	if err := h.experienceService.Delete(id); err != nil {
		handleServiceError(c, err, "experience not found")
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
