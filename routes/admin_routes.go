package routes

import (
	"newsandniche/controllers"
	"newsandniche/middleware"
	"newsandniche/models"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(r *gin.Engine) {
	adminController := controllers.NewAdminController()
	blogController := controllers.NewBlogController()
	submissionController := controllers.NewSubmissionController()

	editorial := r.Group("/api/admin", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor))
	{
		editorial.GET("/stats", adminController.Stats)
		editorial.GET("/blogs", blogController.AdminList)
		editorial.GET("/blogs/:id", blogController.GetByID)
		editorial.GET("/guest-posts", submissionController.ListGuestPosts)
		editorial.PUT("/guest-posts/:id", submissionController.UpdateGuestPostStatus)
		editorial.GET("/sponsored-posts", submissionController.ListSponsoredPosts)
		editorial.PUT("/sponsored-posts/:id", submissionController.UpdateSponsoredPostStatus)
	}

	admin := r.Group("/api/admin", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", adminController.ListUsers)
		admin.PUT("/users/:id", adminController.UpdateUser)
		admin.DELETE("/users/:id", adminController.DeleteUser)
	}
}
