package analytics

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
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	analytics.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, "analytics", "read")
		export := middleware.RBACAuthorize(rbacService, "analytics", "export")

		analytics.GET("/dashboard-stats", read, h.DashboardStats)
		analytics.GET("/completion-rates", read, h.CompletionRates)
		analytics.GET("/department", read, h.DepartmentAnalytics)
		analytics.GET("/time-to-completion", read, h.TimeToCompletion)
		analytics.GET("/task-completion-times", read, h.TaskCompletionTimes)
		analytics.GET("/employee-progress-trend", read, h.ProgressTrend)
		analytics.GET("/task-status", read, h.TaskDistribution)
		analytics.GET("/overdue-tasks", read, h.OverdueTasks)
		analytics.GET("/document-status", read, h.DocumentStatus)
		analytics.GET("/onboarding-timeline/:employeeId", read, h.OnboardingTimeline)
		analytics.GET("/onboarding-timeline/:employeeId/report",
			middleware.RateLimitByUser(0.2, 3),
			export,
			h.OnboardingReport,
		)
		analytics.GET("/export",
			middleware.RateLimitByUser(0.2, 3),
			export,
			h.Export,
		)
	}
}
