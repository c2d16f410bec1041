package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with a trace id, reusing the caller's
// X-Trace-ID header when one is supplied so ids survive proxy hops. The id
// ends up in the gin context and the response envelope.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set("trace_id", traceID)
		c.Writer.Header().Set(traceIDHeader, traceID)
		c.Next()
	}
}
