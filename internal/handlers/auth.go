package handlers

import (
	"github.com/darkred-portfolio/backend/internal/middleware"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles dashboard login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		logger.Warnf("[Auth] Failed login for %q from %s: %v", req.Username, c.ClientIP(), err)
		handleServiceError(c, err, "user not found")
		return
	}

	response.Success(c, result)
}

// GetCurrentUser returns the logged-in user
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		handleServiceError(c, err, "user not found")
		return
	}
	response.Success(c, user)
}

// Logout revokes the presented token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.GetClaims(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "logged out successfully"})
}

// ChangePassword updates the current user's password
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(middleware.GetUserID(c), &req); err != nil {
		handleServiceError(c, err, "user not found")
		return
	}
	response.Success(c, gin.H{"message": "password changed"})
}
