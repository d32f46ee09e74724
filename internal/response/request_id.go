package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware tags every request with an ID that is echoed in the
// X-Request-ID response header and in the response Metadata. An inbound
// X-Request-ID is reused so callers can correlate across services.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestID returns the request's ID, or a fresh one when the middleware
// was not applied, so response metadata never carries an empty ID.
func RequestID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRequestID)
	if id, ok := v.(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
