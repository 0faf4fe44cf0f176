package routes

import (
	"newsandniche/controllers"
	"newsandniche/middleware"
	"newsandniche/models"

	"github.com/gin-gonic/gin"
)

func SetupBlogRoutes(r *gin.Engine) {
	blogController := controllers.NewBlogController()
	sitemapController := controllers.NewSitemapController()

	public := r.Group("/api")
	{
		public.GET("/blogs", blogController.List)
		public.GET("/blogs/slug/:lang/:slug", blogController.GetBySlug)
		public.GET("/sitemap", sitemapController.Sitemap)
	}

	editorial := r.Group("/api", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor))
	{
		editorial.POST("/blogs", blogController.Create)
		editorial.PUT("/blogs/:id", blogController.Update)
		editorial.DELETE("/blogs/:id", blogController.Delete)
		editorial.POST("/blogs/bulk-delete", blogController.BulkDelete)
	}
}
