package activitylog

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
	admin.GET("/activity-logs",
		middleware.RBACAuthorize(rbacService, "activity_log", "read"),
		h.List,
	)
}
