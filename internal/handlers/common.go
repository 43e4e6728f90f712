package handlers

import (
	"errors"
	"strconv"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/storage"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleServiceError maps service errors onto the JSON envelope. notFound is
// the message used for a missing record.
func handleServiceError(c *gin.Context, err error, notFound string) {
	if ve, ok := models.AsValidationError(err); ok {
		response.Error(c, response.NewBadRequest(ve.Reason).WithField(ve.Field))
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		response.Error(c, response.NewConflict("record already exists").WithCause(err))
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUserDisabled):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrWrongPassword):
		response.Error(c, response.NewBadRequest(err.Error()).WithField("old_password"))
	case errors.Is(err, storage.ErrUnsupportedKind), errors.Is(err, storage.ErrUnsupportedType):
		response.BadRequest(c, err.Error())
	default:
		response.Error(c, err)
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name+" id")
		return 0, false
	}
	return uint(id), true
}
