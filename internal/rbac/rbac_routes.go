package rbac

import (
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/roles",
			middleware.RBACAuthorize(rbacService, "rbac", "read"),
			handler.ListRoles,
		)
		group.GET("/permissions",
			middleware.RBACAuthorize(rbacService, "rbac", "read"),
			handler.ListPermissions,
		)
	}
}
