package middleware

import (
	"net/http"

	"newsandniche/utils"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, "HTTP Request")

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"result":  nil,
			"error":   "Internal server error",
		})
		c.Abort()
	})
}
