package middleware

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const auditBodyLimit = 2000

var (
	sensitiveValue = regexp.MustCompile(`(?i)("(?:[a-z_]*password|secret|token|access_token|webhook_url)"\s*:\s*)"(?:[^"\\]|\\.)*"`)
)

func titleWords(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}

// AuditLog records management writes (POST, PUT, PATCH, DELETE) to
// system_logs. Multipart bodies are not captured.
func AuditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		var bodySnippet string
		if c.Request.Body != nil && strings.HasPrefix(c.ContentType(), "application/json") {
			bodyBytes, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			bodySnippet = maskSensitiveFields(string(bodyBytes))
			if len(bodySnippet) > auditBodyLimit {
				bodySnippet = bodySnippet[:auditBodyLimit] + "...[truncated]"
			}
		}

		c.Next()

		status := c.Writer.Status()
		module, action := parseRouteInfo(c.FullPath(), method)

		var uid *uint
		if userID := GetUserID(c); userID > 0 {
			uid = &userID
		}

		entry := services.LogEntry{
			UserID:    uid,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			RequestID: c.GetString(logger.ContextRequestID),
			Extra: map[string]interface{}{
				"method": method,
				"path":   c.Request.URL.Path,
				"status": status,
				"body":   bodySnippet,
			},
		}
		message := formatAuditMessage(GetUsername(c), method, c.Request.URL.Path, status)

		if status >= http.StatusBadRequest {
			services.LogWarning(module, action, message, entry)
			return
		}
		services.LogInfo(module, action, message, entry)
	}
}

// parseRouteInfo maps "/api/site-settings" + PUT to ("Site Settings", "Update").
func parseRouteInfo(fullPath, method string) (module, action string) {
	path := strings.TrimPrefix(fullPath, "/api/")

	parts := strings.SplitN(path, "/", 2)
	module = parts[0]
	if module == "" {
		module = "unknown"
	}
	module = titleWords(module)

	switch method {
	case http.MethodPost:
		action = "Create"
	case http.MethodPut, http.MethodPatch:
		action = "Update"
	case http.MethodDelete:
		action = "Delete"
	default:
		action = method
	}
	if len(parts) == 2 {
		if last := parts[1][strings.LastIndex(parts[1], "/")+1:]; last != "" && !strings.HasPrefix(last, ":") {
			action = titleWords(last)
		}
	}

	return module, action
}

func formatAuditMessage(username, method, path string, status int) string {
	if username == "" {
		username = "anonymous"
	}
	outcome := "OK"
	if status < 200 || status >= 300 {
		outcome = "Failed"
	}
	return "[Audit] " + username + " " + method + " " + path + " -> " + outcome
}

// maskSensitiveFields blanks JSON string values of password, secret, token
// and webhook URL keys.
func maskSensitiveFields(body string) string {
	return sensitiveValue.ReplaceAllString(body, `$1"***"`)
}
