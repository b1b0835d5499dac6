package template

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
	templates := r.Group("/templates")
	templates.Use(middleware.AuthMiddleware())
	templates.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, "template", "read")

		templates.GET("", read, h.GetAll)
		templates.GET("/employees/for-assignment", read, h.GetEmployeesForAssignment)
		templates.GET("/employees/progress", read, h.GetEmployeesProgress)
		templates.GET("/:id", read, h.GetByID)
		templates.GET("/:id/tasks", read, h.GetTasks)
		templates.GET("/:id/assignments", read, h.GetAssignments)
		templates.GET("/:id/analytics", read, h.GetAnalytics)

		templates.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "template", "create"),
			h.Create,
		)
		templates.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "template", "update"),
			h.Update,
		)
		templates.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "template", "delete"),
			h.Delete,
		)
		templates.POST("/:id/duplicate",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "template", "create"),
			h.Duplicate,
		)
		templates.POST("/:id/tasks",
			middleware.RBACAuthorize(rbacService, "template", "update"),
			h.AddTask,
		)
		templates.PUT("/:id/tasks/:taskId",
			middleware.RBACAuthorize(rbacService, "template", "update"),
			h.UpdateTask,
		)
		templates.DELETE("/:id/tasks/:taskId",
			middleware.RBACAuthorize(rbacService, "template", "update"),
			h.RemoveTask,
		)
	}
}
