package dashboard

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
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.ContextLogger(logger))
	{
		dashboard.GET("/employee", middleware.RBACAuthorize(rbacService, "dashboard", "employee"), h.Employee)
		dashboard.GET("/hr", middleware.RBACAuthorize(rbacService, "dashboard", "hr"), h.HR)
		dashboard.GET("/admin", middleware.RBACAuthorize(rbacService, "dashboard", "admin"), h.Admin)
	}
}
