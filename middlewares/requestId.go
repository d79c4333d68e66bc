package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennyflow/pennyflow_backend/appctx"
)

// RequestIdMiddleware propagates a correlation id: the client's
// X-Request-Id when present, a fresh uuid otherwise. Echoed back in the
// response for log correlation.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.Request.Header.Get("X-Request-Id")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		ctx := appctx.Set(c.Request.Context(), appctx.ContextKeyCorrelationId, correlationID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", correlationID)
		c.Next()
	}
}
