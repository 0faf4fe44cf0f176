package controllers

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NewsletterController struct{}

func NewNewsletterController() *NewsletterController {
	return &NewsletterController{}
}

type SubscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Locale string `json:"locale"`
}

// POST /api/newsletter/subscribe
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "a valid email is required"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	locale := utils.NormalizeLang(req.Locale)

	db := utils.GetDB()
	var existing models.NewsletterSubscriber
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		// Re-subscribing refreshes the locale but is otherwise a no-op.
		if existing.Locale != locale {
			existing.Locale = locale
			db.Save(&existing)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "already subscribed"}})
		return
	}

	sub := models.NewsletterSubscriber{
		Email:            email,
		Locale:           locale,
		Confirmed:        true,
		UnsubscribeToken: uuid.NewString(),
	}
	if err := db.Create(&sub).Error; err != nil {
		utils.LogError(err, "newsletter subscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to subscribe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": gin.H{"status": "subscribed"}})
}

// GET /api/newsletter/unsubscribe/:token
func (nc *NewsletterController) Unsubscribe(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid token"})
		return
	}
	db := utils.GetDB()
	res := db.Where("unsubscribe_token = ?", token).Delete(&models.NewsletterSubscriber{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to unsubscribe"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "subscription not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "unsubscribed"}})
}

// GET /api/newsletter/subscribers (admin)
func (nc *NewsletterController) List(c *gin.Context) {
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
	if err := db.Model(&models.NewsletterSubscriber{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count subscribers"})
		return
	}
	var subs []models.NewsletterSubscriber
	if err := db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch subscribers"})
		return
	}
	items := make([]gin.H, 0, len(subs))
	for _, s := range subs {
		items = append(items, gin.H{
			"id":         s.ID,
			"email":      s.Email,
			"locale":     s.Locale,
			"confirmed":  s.Confirmed,
			"created_at": s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{
		"page":        page,
		"limit":       limit,
		"total_count": total,
		"data":        items,
	}})
}

type BroadcastRequest struct {
	Subject utils.LocalizedText `json:"subject"`
	Body    utils.LocalizedText `json:"body"`
}

// POST /api/newsletter/broadcast (admin)
// Sends per-locale content to every confirmed subscriber. Each send is
// independent; a partial failure reports one generic message with the count
// that went out, already-sent mails are not recalled.
func (nc *NewsletterController) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Subject.IsEmpty() || req.Body.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "subject and body are required"})
		return
	}

	db := utils.GetDB()
	var subs []models.NewsletterSubscriber
	if err := db.Where("confirmed = ?", true).Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch subscribers"})
		return
	}

	sent := 0
	failedAny := false
	for _, s := range subs {
		locale := s.Locale
		subject := req.Subject.Get(locale)
		body := req.Body.Get(locale)
		if subject == "" {
			subject = req.Subject.Get(req.Subject.PreferredLang())
		}
		if body == "" {
			body = req.Body.Get(req.Body.PreferredLang())
		}
		if err := utils.SendHTMLEmail(s.Email, subject, body,
			os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
			utils.LogError(err, "newsletter broadcast")
			failedAny = true
			continue
		}
		sent++
	}

	if failedAny {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"result":  gin.H{"sent": sent, "total": len(subs)},
			"error":   "Some emails could not be sent",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"sent": sent, "total": len(subs)}})
}
