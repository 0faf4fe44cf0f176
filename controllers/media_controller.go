package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Client-side limits in the admin UI ranged from 100KB to 5MB; the server
// enforces the widest pair.
const (
	minUploadSize = 100 << 10
	maxUploadSize = 5 << 20
)

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

type MediaController struct {
	UploadDir string
}

func NewMediaController(uploadDir string) *MediaController {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &MediaController{UploadDir: uploadDir}
}

// POST /upload/image
// multipart/form-data, field "file". Returns a URL under /uploads.
func (mc *MediaController) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "file is required"})
		return
	}
	if file.Size < minUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "file must be at least 100KB"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "file must be at most 5MB"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "unsupported image type"})
		return
	}

	if err := os.MkdirAll(mc.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to save file"})
		return
	}
	filename := uuid.NewString() + ext
	dstPath := filepath.Join(mc.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dstPath); err != nil {
		utils.LogError(err, "media upload")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to save file"})
		return
	}

	media := models.Media{
		FileName:  filename,
		URL:       "/uploads/" + filename,
		MimeType:  file.Header.Get("Content-Type"),
		SizeBytes: file.Size,
	}
	if uid, ok := currentUserID(c); ok {
		media.UploadedBy = &uid
	}
	if err := utils.GetDB().Create(&media).Error; err != nil {
		utils.LogError(err, "media record create")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to save file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "result": gin.H{
		"id":   media.ID,
		"url":  media.URL,
		"size": media.SizeBytes,
	}})
}

// GET /api/media
func (mc *MediaController) List(c *gin.Context) {
	page := 1
	limit := 50
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	db := utils.GetDB()
	var total int64
	if err := db.Model(&models.Media{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count media"})
		return
	}
	var media []models.Media
	if err := db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch media"})
		return
	}
	items := make([]gin.H, 0, len(media))
	for _, m := range media {
		items = append(items, gin.H{
			"id":          m.ID,
			"file_name":   m.FileName,
			"url":         m.URL,
			"mime_type":   m.MimeType,
			"size":        m.SizeBytes,
			"uploaded_by": m.UploadedBy,
			"created_at":  m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{
		"page":        page,
		"limit":       limit,
		"total_count": total,
		"data":        items,
	}})
}

// DELETE /api/media/:id
// Removes both the record and the file on disk.
func (mc *MediaController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	db := utils.GetDB()
	var media models.Media
	if err := db.First(&media, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "media not found"})
		return
	}
	if err := db.Delete(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to delete media"})
		return
	}
	if err := os.Remove(filepath.Join(mc.UploadDir, media.FileName)); err != nil && !os.IsNotExist(err) {
		utils.LogError(fmt.Errorf("remove %s: %w", media.FileName, err), "media file delete")
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": id}})
}
