package user

import (
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	users := r.Group("/auth/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetAll,
		)
		users.PUT("/:id/status",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.UpdateStatus,
		)
	}
}
