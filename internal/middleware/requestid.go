package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestIDHeader is echoed back on every response so streamed requests can
// be correlated with server-side logs.
const RequestIDHeader = "X-Request-ID"

// WithRequestID assigns a UUID to each request, honoring an inbound
// X-Request-ID when the caller supplies one.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the request id assigned by WithRequestID, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
