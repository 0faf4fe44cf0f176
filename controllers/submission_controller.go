package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
)

// SubmissionController handles the public guest-post and sponsored-post
// inquiry forms plus their admin review queues.
type SubmissionController struct{}

func NewSubmissionController() *SubmissionController {
	return &SubmissionController{}
}

type GuestPostRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Website string `json:"website"`
	Topic   string `json:"topic" binding:"required"`
	Message string `json:"message"`
}

// POST /api/guest-posts
func (sc *SubmissionController) CreateGuestPost(c *gin.Context) {
	var req GuestPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "name, email and topic are required"})
		return
	}
	gp := models.GuestPost{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Website: strings.TrimSpace(req.Website),
		Topic:   strings.TrimSpace(req.Topic),
		Message: req.Message,
		Status:  models.SubmissionNew,
	}
	if err := utils.GetDB().Create(&gp).Error; err != nil {
		utils.LogError(err, "guest post create")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to submit"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": gin.H{"id": gp.ID, "status": gp.Status}})
}

type SponsoredPostRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company"`
	ProductName string `json:"product_name"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

// POST /api/sponsored-posts
func (sc *SubmissionController) CreateSponsoredPost(c *gin.Context) {
	var req SponsoredPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "name and email are required"})
		return
	}
	sp := models.SponsoredPost{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Company:     strings.TrimSpace(req.Company),
		ProductName: strings.TrimSpace(req.ProductName),
		Budget:      req.Budget,
		Message:     req.Message,
		Status:      models.SubmissionNew,
	}
	if err := utils.GetDB().Create(&sp).Error; err != nil {
		utils.LogError(err, "sponsored post create")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to submit"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": gin.H{"id": sp.ID, "status": sp.Status}})
}

// GET /api/admin/guest-posts
func (sc *SubmissionController) ListGuestPosts(c *gin.Context) {
	var items []models.GuestPost
	q := utils.GetDB().Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch guest posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"data": items}})
}

// GET /api/admin/sponsored-posts
func (sc *SubmissionController) ListSponsoredPosts(c *gin.Context) {
	var items []models.SponsoredPost
	q := utils.GetDB().Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch sponsored posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"data": items}})
}

type submissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func validSubmissionStatus(s string) bool {
	switch s {
	case models.SubmissionNew, models.SubmissionReviewed, models.SubmissionAccepted, models.SubmissionRejected:
		return true
	}
	return false
}

// PUT /api/admin/guest-posts/:id
func (sc *SubmissionController) UpdateGuestPostStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	var req submissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validSubmissionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid status"})
		return
	}
	db := utils.GetDB()
	var gp models.GuestPost
	if err := db.First(&gp, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "guest post not found"})
		return
	}
	gp.Status = req.Status
	if err := db.Save(&gp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": gp.ID, "status": gp.Status}})
}

// PUT /api/admin/sponsored-posts/:id
func (sc *SubmissionController) UpdateSponsoredPostStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	var req submissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validSubmissionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid status"})
		return
	}
	db := utils.GetDB()
	var sp models.SponsoredPost
	if err := db.First(&sp, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "sponsored post not found"})
		return
	}
	sp.Status = req.Status
	if err := db.Save(&sp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": sp.ID, "status": sp.Status}})
}
