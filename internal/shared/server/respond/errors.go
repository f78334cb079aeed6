package respond

import (
	"github.com/gin-gonic/gin"

	"ideacheck-backend/internal/shared/telemetry"
)

// ErrorBody is the flat error object the analyze client renders.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends the standardized error response and logs it with request context.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
