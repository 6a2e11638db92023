// Package respond centralizes JSON responses and the {ok, error} failure
// envelope shared by every route.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/shared/telemetry"
)

// Failure is the shared failure body: ok=false plus a message.
type Failure struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Error logs the failure and sends the {ok, error} envelope. The message
// goes to the client verbatim; err is only logged, never sent.
func Error(c *gin.Context, status int, message string, err error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, Failure{OK: false, Error: message})
}
