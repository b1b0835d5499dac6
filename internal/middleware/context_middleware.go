package middleware

import (
	"go-onboarding/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger memasang logger ber-scope request ke context, dipasang setelah AuthMiddleware
// supaya user_id dan role sudah tersedia.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := c.GetString("request_id")
		if rid == "" {
			rid = ensureRequestID(c)
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		uid := c.GetString("user_id")
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		}
		if tid := contextutil.GetTraceID(ctx); tid != "" {
			fields = append(fields, zap.String("trace_id", tid))
		}

		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
