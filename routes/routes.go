package routes

import (
	"newsandniche/config"
	"newsandniche/controllers"
	"newsandniche/middleware"
	"newsandniche/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine and registers every route group.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Lang"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)

	rdb := utils.GetRedis()
	userController := controllers.NewUserController(rdb)
	profileController := controllers.NewUserProfileController(rdb)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", userController.Register)
		auth.POST("/login", userController.Login)
		auth.POST("/forgot-password", userController.ForgotPassword)
		auth.POST("/reset-password", userController.ResetPassword)
		auth.GET("/google", userController.GoogleLogin)
		auth.GET("/google/callback", userController.GoogleCallback)
	}

	user := r.Group("/api/user", middleware.JWTAuthMiddleware())
	{
		user.GET("/profile", profileController.GetProfile)
		user.PUT("/profile", profileController.UpdateProfile)
		user.POST("/change-password", profileController.ChangePassword)
		user.POST("/logout", profileController.Logout)
	}

	SetupBlogRoutes(r)
	SetupCategoryRoutes(r)
	SetupMediaRoutes(r, cfg)
	SetupNewsletterRoutes(r)
	SetupSubmissionRoutes(r)
	SetupAdminRoutes(r)

	return r
}
