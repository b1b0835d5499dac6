package assignment

import (
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, "task", "read")
		update := middleware.RBACAuthorize(rbacService, "task", "update")

		tasks.GET("/my-tasks", read, h.MyTasks)
		tasks.GET("/progress", read, h.MyProgress)
		tasks.GET("/overdue", read, h.Overdue)
		tasks.GET("/:id", read, h.GetByID)
		tasks.PUT("/:id/status",
			middleware.RateLimitByUser(2, 10),
			update,
			h.UpdateStatus,
		)
		tasks.POST("/:id/mark-read", update, h.MarkRead)
	}

	templates := r.Group("/templates")
	templates.Use(middleware.AuthMiddleware())
	templates.Use(middleware.ContextLogger(logger))
	templates.POST("/:id/assign/:employeeId",
		middleware.RateLimitByUser(1, 5),
		middleware.RBACAuthorize(rbacService, "template", "assign"),
		middleware.Idempotency(rdb, logger),
		h.AssignFromTemplate,
	)
}
