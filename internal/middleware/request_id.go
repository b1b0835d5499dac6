package middleware

import (
	"go-onboarding/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// RequestID memakai X-Request-ID dari client bila wajar, selain itu membuat UUID baru.
// Nilainya dipantulkan ke response, gin context, context.Context, dan span aktif.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := ensureRequestID(c)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("request.id", rid))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func ensureRequestID(c *gin.Context) string {
	rid := c.GetHeader(requestIDHeader)
	if rid == "" || len(rid) > maxRequestIDLen {
		rid = uuid.NewString()
	}
	c.Set("request_id", rid)
	c.Header(requestIDHeader, rid)
	return rid
}
