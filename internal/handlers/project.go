package handlers

import (
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/storage"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	uploads        *Uploads
}

func NewProjectHandler(db *gorm.DB, uploads *Uploads) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
		uploads:        uploads,
	}
}

// List returns all projects, newest first
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, projects)
}

// GetByID returns a project by ID
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "project not found")
		return
	}
	response.Success(c, project)
}

// Create creates a project, deriving a unique slug from the title when none
// is given
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		handleServiceError(c, err, "project not found")
		return
	}
	response.Created(c, project)
}

// Update updates a project
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	var req services.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err, "project not found")
		return
	}
	response.Success(c, project)
}

// UploadImage stores the project's cover image
// POST /api/projects/:id/image
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}
	if _, err := h.projectService.GetByID(id); err != nil {
		handleServiceError(c, err, "project not found")
		return
	}

	url, ok := h.uploads.save(c, storage.KindProject)
	if !ok {
		return
	}

	project, err := h.projectService.SetImage(id, url)
	if err != nil {
		handleServiceError(c, err, "project not found")
		return
	}
	response.Success(c, project)
}

// Delete removes a project; its slug becomes available again
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		handleServiceError(c, err, "project not found")
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
