package notification

import (
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	notifications.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, "notification", "read")

		notifications.GET("", read, h.List)
		notifications.GET("/unread", read, h.ListUnread)
		notifications.GET("/unread/count", read, h.UnreadCount)
		notifications.PUT("/read-all", read, h.MarkAllRead)
		notifications.PUT("/:id/read", read, h.MarkRead)
		notifications.DELETE("/clear-all", read, h.ClearAll)
		notifications.DELETE("/:id", read, h.Delete)
		notifications.POST("",
			middleware.RateLimitByUser(1, 10),
			middleware.RBACAuthorize(rbacService, "notification", "create"),
			h.Create,
		)
	}
}
