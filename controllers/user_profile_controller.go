package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type UserProfileController struct {
	RDB *redis.Client
}

func NewUserProfileController(rdb *redis.Client) *UserProfileController {
	return &UserProfileController{RDB: rdb}
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GET /api/user/profile
func (upc *UserProfileController) GetProfile(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Unauthorized"})
		return
	}
	var user models.User
	if err := utils.GetDB().First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": toUserItem(user)})
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}

// PUT /api/user/profile
func (upc *UserProfileController) UpdateProfile(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Unauthorized"})
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "User not found"})
		return
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": toUserItem(user)})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// POST /api/user/change-password
func (upc *UserProfileController) ChangePassword(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Unauthorized"})
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "User not found"})
		return
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Old password is incorrect"})
		return
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to change password"})
		return
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "password changed"}})
}

// POST /api/user/logout
// Blacklists the presented token until its natural expiry.
func (upc *UserProfileController) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "No token provided"})
		return
	}
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}
	claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "Invalid token"})
		return
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "Invalid token exp"})
		return
	}
	ttl := int64(exp) - time.Now().Unix()
	if ttl > 0 {
		upc.RDB.Set(context.Background(), "blacklist:"+token, "1", time.Duration(ttl)*time.Second)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "logged out"}})
}
