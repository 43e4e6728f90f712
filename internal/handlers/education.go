package handlers

import (
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EducationHandler struct {
	educationService *services.EducationService
}

func NewEducationHandler(db *gorm.DB) *EducationHandler {
	return &EducationHandler{
		educationService: services.NewEducationService(db),
	}
}

// List returns education entries, ongoing first
// GET /api/educations
func (h *EducationHandler) List(c *gin.Context) {
	items, err := h.educationService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// GET /api/educations/:id
func (h *EducationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "education")
	if !ok {
		return
	}

	item, err := h.educationService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "education not found")
		return
	}
	response.Success(c, item)
}

// POST /api/educations
func (h *EducationHandler) Create(c *gin.Context) {
	var req services.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.educationService.Create(&req)
	if err != nil {
		handleServiceError(c, err, "education not found")
		return
	}
	response.Created(c, item)
}

// PUT /api/educations/:id
func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "education")
	if !ok {
		return
	}

	var req services.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.educationService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err, "education not found")
		return
	}
	response.Success(c, item)
}

// DELETE /api/educations/:id
func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "education")
	if !ok {
		return
	}

	if err := h.educationService.Delete(id); err != nil {
		handleServiceError(c, err, "education not found")
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
