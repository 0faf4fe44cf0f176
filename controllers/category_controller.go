package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsandniche/models"
	"newsandniche/utils"
)

type categoryPayload struct {
	Lang        string              `json:"lang"`
	Name        utils.LocalizedText `json:"name"`
	Description utils.LocalizedText `json:"description"`
	Slug        utils.LocalizedText `json:"slug"`
	Color       string              `json:"color"`
	Icon        string              `json:"icon"`
	IsActive    *bool               `json:"is_active"`
	SortOrder   *int                `json:"sort_order"`
}

type CategoryController struct{}

func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// deriveCategorySlugs uses the normalizing variant: category names get pasted
// from all over (accented brand names, mixed scripts), so NFKD-fold first.
func deriveCategorySlugs(p *categoryPayload) {
	for _, lang := range []string{utils.LangEN, utils.LangBN} {
		if _, hasName := p.Name[lang]; hasName {
			if _, hasSlug := p.Slug[lang]; !hasSlug {
				p.Slug = p.Slug.Set(lang, utils.SlugifyNormalized(p.Name[lang], lang))
			}
		}
	}
}

func validateCategoryPayload(p categoryPayload, lang string) []string {
	var missing []string
	if !p.Name.Has(lang) {
		missing = append(missing, "name."+lang)
	}
	if !p.Slug.Has(lang) {
		missing = append(missing, "slug."+lang)
	}
	return missing
}

func categorySlugConflictMessage(lang string) string {
	if lang == utils.LangBN {
		return "A category with this Bangla slug already exists. Change the Bangla slug."
	}
	return "A category with this English slug already exists. Change the English slug."
}

func (cc *CategoryController) checkSlugConflicts(slugs utils.LocalizedText, excludeID uint) (string, bool, error) {
	db := utils.GetDB()
	for _, lang := range []string{utils.LangEN, utils.LangBN} {
		s := slugs.Get(lang)
		if s == "" {
			continue
		}
		var count int64
		q := db.Model(&models.Category{}).Where(models.SlugColumn(lang)+" = ?", s)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", false, err
		}
		if count > 0 {
			return categorySlugConflictMessage(lang), true, nil
		}
	}
	return "", false, nil
}

// GET /api/categories?lang=en
func (cc *CategoryController) List(c *gin.Context) {
	db := utils.GetDB()
	lang := getLang(c)
	q := db.Model(&models.Category{})
	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}
	var categories []models.Category
	if err := q.Order("sort_order asc, created_at asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch categories"})
		return
	}
	items := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		items = append(items, cc.toItem(cat, lang))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"categories": items}})
}

// GET /api/categories/:id (admin: full bilingual record)
func (cc *CategoryController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	var cat models.Category
	if err := utils.GetDB().First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": cc.toAdminItem(cat)})
}

// POST /api/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req categoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	lang := utils.NormalizeLang(req.Lang)

	explicit := utils.LocalizedText{}
	for l, s := range req.Slug {
		explicit[l] = s
	}
	deriveCategorySlugs(&req)

	if missing := validateCategoryPayload(req, lang); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": missingFieldsMessage(missing)})
		return
	}
	msg, conflict, err := cc.checkSlugConflicts(explicit, 0)
	if err != nil {
		utils.LogError(err, "category slug check")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to check slug availability"})
		return
	}
	if conflict {
		c.JSON(http.StatusConflict, gin.H{"success": false, "result": nil, "error": msg})
		return
	}

	db := utils.GetDB()
	for _, l := range []string{utils.LangEN, utils.LangBN} {
		if _, hand := explicit[l]; hand || !req.Slug.Has(l) {
			continue
		}
		unique, err := utils.UniqueSlug(db, &models.Category{}, models.SlugColumn(l), req.Slug.Get(l), 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate slug"})
			return
		}
		req.Slug = req.Slug.Set(l, unique)
	}

	cat := models.Category{
		Name:        utils.JSONFrom(req.Name),
		Description: utils.JSONFrom(req.Description),
		SlugEn:      req.Slug.Get(utils.LangEN),
		SlugBn:      req.Slug.Get(utils.LangBN),
		Icon:        req.Icon,
	}
	if req.Color != "" {
		cat.Color = req.Color
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	} else {
		cat.IsActive = true
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}
	if err := db.Create(&cat).Error; err != nil {
		utils.LogError(err, "category create")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": cc.toAdminItem(cat)})
}

// PUT /api/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	var req categoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}

	db := utils.GetDB()
	var cat models.Category
	if err := db.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "category not found"})
		return
	}
	msg, conflict, err := cc.checkSlugConflicts(req.Slug, cat.ID)
	if err != nil {
		utils.LogError(err, "category slug check")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to check slug availability"})
		return
	}
	if conflict {
		c.JSON(http.StatusConflict, gin.H{"success": false, "result": nil, "error": msg})
		return
	}

	name := utils.ParseLocalizedText(cat.Name)
	slug := utils.LocalizedText{}
	if cat.SlugEn != "" {
		slug[utils.LangEN] = cat.SlugEn
	}
	if cat.SlugBn != "" {
		slug[utils.LangBN] = cat.SlugBn
	}
	rederived := slugRederivations(name, req.Name, req.Slug)
	for _, lang := range rederived {
		req.Slug = req.Slug.Set(lang, utils.SlugifyNormalized(req.Name[lang], lang))
	}

	cat.Name = utils.JSONFrom(name.Merge(req.Name))
	cat.Description = utils.JSONFrom(utils.ParseLocalizedText(cat.Description).Merge(req.Description))
	merged := slug.Merge(req.Slug)
	if len(rederived) > 0 {
		merged, err = uniquifyDerivedSlugs(merged, rederived, func(lang, base string) (string, error) {
			return utils.UniqueSlug(db, &models.Category{}, models.SlugColumn(lang), base, cat.ID)
		})
		if err != nil {
			utils.LogError(err, "category slug uniquify")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate slug"})
			return
		}
	}
	cat.SlugEn = merged.Get(utils.LangEN)
	cat.SlugBn = merged.Get(utils.LangBN)
	if req.Color != "" {
		cat.Color = req.Color
	}
	if req.Icon != "" {
		cat.Icon = req.Icon
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}

	if err := db.Save(&cat).Error; err != nil {
		utils.LogError(err, "category update")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": cc.toAdminItem(cat)})
}

// DELETE /api/categories/:id
// Refuses to delete a category that still has posts.
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	db := utils.GetDB()
	var inUse int64
	if err := db.Model(&models.BlogPost{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to check category usage"})
		return
	}
	if inUse > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "result": nil, "error": "category still has posts"})
		return
	}
	if err := db.Delete(&models.Category{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": id}})
}

// POST /api/categories/bulk-delete
func (cc *CategoryController) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "ids is required"})
		return
	}
	db := utils.GetDB()
	deleted, failed := applyBulkDelete(req.IDs, func(id uint) error {
		var inUse int64
		if err := db.Model(&models.BlogPost{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return fmt.Errorf("category %d still has posts", id)
		}
		res := db.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("category %d not found", id)
		}
		return nil
	})
	if len(failed) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"result":  gin.H{"deleted": deleted},
			"error":   "Some items could not be deleted",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"deleted": deleted}})
}

func (cc *CategoryController) toItem(cat models.Category, lang string) gin.H {
	name := utils.ParseLocalizedText(cat.Name)
	if !name.Has(lang) {
		lang = name.PreferredLang()
	}
	slug := cat.SlugEn
	if lang == utils.LangBN {
		slug = cat.SlugBn
	}
	return gin.H{
		"id":          cat.ID,
		"name":        name.Get(lang),
		"slug":        slug,
		"description": utils.ParseLocalizedText(cat.Description).Get(lang),
		"color":       cat.Color,
		"icon":        cat.Icon,
		"is_active":   cat.IsActive,
		"sort_order":  cat.SortOrder,
	}
}

func (cc *CategoryController) toAdminItem(cat models.Category) gin.H {
	return gin.H{
		"id":          cat.ID,
		"name":        utils.ParseLocalizedText(cat.Name),
		"slug":        gin.H{utils.LangEN: cat.SlugEn, utils.LangBN: cat.SlugBn},
		"description": utils.ParseLocalizedText(cat.Description),
		"color":       cat.Color,
		"icon":        cat.Icon,
		"is_active":   cat.IsActive,
		"sort_order":  cat.SortOrder,
		"created_at":  cat.CreatedAt,
		"updated_at":  cat.UpdatedAt,
	}
}
