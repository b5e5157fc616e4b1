package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mostface/internal/telemetry"
)

// RegisterDebugRoutes wires verification endpoints for the event pipeline.
// They are mounted unconditionally; the emitter degrades to a no-op when no
// broker is configured.
func RegisterDebugRoutes(r *gin.Engine, audit *telemetry.AuditEmitter) {
	r.GET("/debug/audit-test", func(c *gin.Context) {
		requestID := requestIDFromContext(c)
		audit.Emit(c.Request.Context(), "info", "audit pipeline check", requestID, userIDFromContext(c))
		c.JSON(http.StatusOK, gin.H{"status": "emitted", "request_id": requestID})
	})
}
