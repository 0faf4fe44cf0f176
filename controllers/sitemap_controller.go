package controllers

import (
	"net/http"
	"os"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
)

type SitemapController struct{}

func NewSitemapController() *SitemapController {
	return &SitemapController{}
}

// GET /api/sitemap
// Per-language URL entries for every published post and active category, for
// the frontend's sitemap.xml generation.
func (sc *SitemapController) Sitemap(c *gin.Context) {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "https://newsandniche.com"
	}

	db := utils.GetDB()
	var posts []models.BlogPost
	if err := db.Where("status = ?", models.StatusPublished).Order("published_at desc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch posts"})
		return
	}
	var categories []models.Category
	if err := db.Where("is_active = ?", true).Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch categories"})
		return
	}

	entries := []gin.H{}
	for _, p := range posts {
		if p.SlugEn != "" {
			entries = append(entries, gin.H{"url": base + "/en/blogs/" + p.SlugEn, "lang": utils.LangEN, "lastmod": p.UpdatedAt})
		}
		if p.SlugBn != "" {
			entries = append(entries, gin.H{"url": base + "/bn/blogs/" + p.SlugBn, "lang": utils.LangBN, "lastmod": p.UpdatedAt})
		}
	}
	for _, cat := range categories {
		if cat.SlugEn != "" {
			entries = append(entries, gin.H{"url": base + "/en/categories/" + cat.SlugEn, "lang": utils.LangEN, "lastmod": cat.UpdatedAt})
		}
		if cat.SlugBn != "" {
			entries = append(entries, gin.H{"url": base + "/bn/categories/" + cat.SlugBn, "lang": utils.LangBN, "lastmod": cat.UpdatedAt})
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"entries": entries}})
}
