package controllers

import (
	"net/http"
	"strconv"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct{}

func NewAdminController() *AdminController {
	return &AdminController{}
}

// GET /api/admin/stats
func (ac *AdminController) Stats(c *gin.Context) {
	db := utils.GetDB()

	var published, drafts, scheduled, categories, users, subscribers, media int64
	db.Model(&models.BlogPost{}).Where("status = ?", models.StatusPublished).Count(&published)
	db.Model(&models.BlogPost{}).Where("status = ?", models.StatusDraft).Count(&drafts)
	db.Model(&models.BlogPost{}).Where("status = ?", models.StatusScheduled).Count(&scheduled)
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.NewsletterSubscriber{}).Count(&subscribers)
	db.Model(&models.Media{}).Count(&media)

	var pendingGuest, pendingSponsored int64
	db.Model(&models.GuestPost{}).Where("status = ?", models.SubmissionNew).Count(&pendingGuest)
	db.Model(&models.SponsoredPost{}).Where("status = ?", models.SubmissionNew).Count(&pendingSponsored)

	var recent []models.BlogPost
	db.Order("created_at desc").Limit(5).Find(&recent)
	recentItems := make([]gin.H, 0, len(recent))
	for _, p := range recent {
		title := utils.ParseLocalizedText(p.Title)
		lang := title.PreferredLang()
		recentItems = append(recentItems, gin.H{
			"id":         p.ID,
			"title":      title.Get(lang),
			"status":     p.Status,
			"created_at": p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{
		"posts": gin.H{
			"published": published,
			"drafts":    drafts,
			"scheduled": scheduled,
		},
		"categories":              categories,
		"users":                   users,
		"newsletter_subscribers":  subscribers,
		"media":                   media,
		"pending_guest_posts":     pendingGuest,
		"pending_sponsored_posts": pendingSponsored,
		"recent_posts":            recentItems,
	}})
}

// GET /api/admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	page := 1
	limit := 50
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	db := utils.GetDB()
	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count users"})
		return
	}
	var users []models.User
	if err := db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch users"})
		return
	}
	items := make([]gin.H, 0, len(users))
	for _, u := range users {
		items = append(items, toUserItem(u))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{
		"page":        page,
		"limit":       limit,
		"total_count": total,
		"data":        items,
	}})
}

type updateUserRequest struct {
	Role      *string `json:"role"`
	Confirmed *bool   `json:"confirmed"`
}

func validRole(r string) bool {
	switch r {
	case models.RoleAdmin, models.RoleEditor, models.RoleUser:
		return true
	}
	return false
}

// PUT /api/admin/users/:id
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	if req.Role != nil && !validRole(*req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid role"})
		return
	}
	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "user not found"})
		return
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Confirmed != nil {
		user.Confirmed = *req.Confirmed
	}
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": toUserItem(user)})
}

// DELETE /api/admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	if uid, ok := currentUserID(c); ok && uid == uint(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "cannot delete your own account"})
		return
	}
	if err := utils.GetDB().Delete(&models.User{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": id}})
}
