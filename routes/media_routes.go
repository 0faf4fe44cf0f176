package routes

import (
	"newsandniche/config"
	"newsandniche/controllers"
	"newsandniche/middleware"
	"newsandniche/models"

	"github.com/gin-gonic/gin"
)

func SetupMediaRoutes(r *gin.Engine, cfg *config.Config) {
	mediaController := controllers.NewMediaController(cfg.UploadDir)

	editorial := r.Group("", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor))
	{
		editorial.POST("/upload/image", mediaController.UploadImage)
		editorial.GET("/api/media", mediaController.List)
		editorial.DELETE("/api/media/:id", mediaController.Delete)
	}
}
