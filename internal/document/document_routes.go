package document

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
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	documents.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, "document", "read")
		review := middleware.RBACAuthorize(rbacService, "document", "review")

		documents.POST("/upload",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "document", "upload"),
			h.Upload,
		)
		documents.GET("/my-documents", read, h.MyDocuments)
		documents.GET("/pending", review, h.Pending)
		documents.GET("", middleware.RBACAuthorize(rbacService, "document", "read_all"), h.List)
		documents.GET("/:id", read, h.GetByID)
		documents.GET("/:id/download", read, h.Download)
		documents.DELETE("/:id", middleware.RBACAuthorize(rbacService, "document", "upload"), h.Delete)
		documents.PUT("/:id/approve", review, h.Approve)
		documents.PUT("/:id/reject", review, h.Reject)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))
	tasks.POST("/:id/upload",
		middleware.RateLimitByUser(0.5, 5),
		middleware.RBACAuthorize(rbacService, "document", "upload"),
		h.UploadForTask,
	)
}
