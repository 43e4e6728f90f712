package middleware

import (
	"context"
	"net/http"

	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// InvalidateOnWrite calls invalidate after every successful write request.
func InvalidateOnWrite(invalidate func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		if err := invalidate(c.Request.Context()); err != nil {
			logger.Warnf("[Cache] Failed to invalidate public pages: %v", err)
		}
	}
}
