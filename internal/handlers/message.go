package handlers

import (
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	contactService *services.ContactService
}

func NewMessageHandler(contactService *services.ContactService) *MessageHandler {
	return &MessageHandler{contactService: contactService}
}

// List returns paginated contact messages
// GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	var req services.ContactListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.contactService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, items, total, req.Page, req.PageSize)
}

// GET /api/messages/:id
func (h *MessageHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "message")
	if !ok {
		return
	}

	msg, err := h.contactService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "message not found")
		return
	}
	response.Success(c, msg)
}

type setReadRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// SetRead marks a message read or unread
// PUT /api/messages/:id/read
func (h *MessageHandler) SetRead(c *gin.Context) {
	id, ok := parseID(c, "message")
	if !ok {
		return
	}

	var req setReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.contactService.SetRead(id, *req.IsRead)
	if err != nil {
		handleServiceError(c, err, "message not found")
		return
	}
	response.Success(c, msg)
}

// ToggleRead flips the read flag
// POST /api/messages/:id/toggle-read
func (h *MessageHandler) ToggleRead(c *gin.Context) {
	id, ok := parseID(c, "message")
	if !ok {
		return
	}

	msg, err := h.contactService.ToggleRead(id)
	if err != nil {
		handleServiceError(c, err, "message not found")
		return
	}
	response.Success(c, msg)
}

// DELETE /api/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "message")
	if !ok {
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		handleServiceError(c, err, "message not found")
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}

// UnreadCount feeds the dashboard badge
// GET /api/messages/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, err := h.contactService.UnreadCount()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}
