package routes

import (
	"newsandniche/controllers"
	"newsandniche/middleware"
	"newsandniche/models"

	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(r *gin.Engine) {
	categoryController := controllers.NewCategoryController()

	r.GET("/api/categories", categoryController.List)

	editorial := r.Group("/api", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor))
	{
		editorial.GET("/categories/:id", categoryController.GetByID)
		editorial.POST("/categories", categoryController.Create)
		editorial.PUT("/categories/:id", categoryController.Update)
		editorial.DELETE("/categories/:id", categoryController.Delete)
		editorial.POST("/categories/bulk-delete", categoryController.BulkDelete)
	}
}
