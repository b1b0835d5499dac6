package auth

import (
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 5), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.05, 3), handler.ForgotPassword)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.05, 3), handler.ResetPassword)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 10), handler.RefreshToken)
	}

	private := r.Group("/auth")
	private.Use(middleware.AuthMiddleware())
	private.Use(middleware.ContextLogger(logger))
	{
		private.GET("/verify", handler.Verify)
		private.POST("/logout", handler.Logout)
		private.GET("/profile", handler.GetProfile)
		private.PUT("/profile", middleware.RateLimitByUser(1, 5), handler.UpdateProfile)
		private.PUT("/change-password", middleware.RateLimitByUser(0.2, 3), handler.ChangePassword)
		private.POST("/profile/picture", middleware.RateLimitByUser(0.2, 3), handler.UploadProfilePicture)
		private.DELETE("/profile/picture", handler.DeleteProfilePicture)
	}
}
