package respond

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// ErrorBody is the wire shape of every error response. Field names the first
// violated field for validation errors and is omitted otherwise.
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error logs and sends a standardized error response, aborting the request.
func Error(c *gin.Context, status int, message, field string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if field != "" {
		fields["field"] = field
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{
		Message: message,
		Field:   field,
	})
}
