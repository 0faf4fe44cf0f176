package routes

import (
	"newsandniche/controllers"
	"newsandniche/middleware"
	"newsandniche/models"

	"github.com/gin-gonic/gin"
)

func SetupNewsletterRoutes(r *gin.Engine) {
	newsletterController := controllers.NewNewsletterController()

	grp := r.Group("/api/newsletter")
	{
		grp.POST("/subscribe", newsletterController.Subscribe)
		grp.GET("/unsubscribe/:token", newsletterController.Unsubscribe)
	}

	admin := r.Group("/api/newsletter", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/subscribers", newsletterController.List)
		admin.POST("/broadcast", newsletterController.Broadcast)
	}
}
