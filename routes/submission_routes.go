package routes

import (
	"newsandniche/controllers"

	"github.com/gin-gonic/gin"
)

func SetupSubmissionRoutes(r *gin.Engine) {
	submissionController := controllers.NewSubmissionController()

	r.POST("/api/guest-posts", submissionController.CreateGuestPost)
	r.POST("/api/sponsored-posts", submissionController.CreateSponsoredPost)
}
