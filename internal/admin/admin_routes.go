package admin

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
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.GET("/system-health", middleware.RBACAuthorize(rbacService, "system", "read"), h.SystemHealth)

		jobs := admin.Group("/jobs")
		jobs.Use(middleware.RateLimitByUser(0.1, 2))
		jobs.Use(middleware.RBACAuthorize(rbacService, "job", "run"))
		jobs.POST("/mark-overdue", h.MarkOverdue)
		jobs.POST("/send-reminders", h.SendReminders)
		jobs.POST("/prune-activity", h.PruneActivity)
	}
}
