package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"newsandniche/models"
	"newsandniche/utils"
)

// blogPayload carries every bilingual field of a post as a lang->value map.
// A language absent from a map is untouched; a language present (even empty)
// overwrites on update.
type blogPayload struct {
	Lang           string              `json:"lang"`
	Title          utils.LocalizedText `json:"title"`
	Excerpt        utils.LocalizedText `json:"excerpt"`
	Content        utils.LocalizedText `json:"content"`
	Slug           utils.LocalizedText `json:"slug"`
	SeoTitle       utils.LocalizedText `json:"seo_title"`
	SeoDescription utils.LocalizedText `json:"seo_description"`
	SeoKeywords    utils.LocalizedList `json:"seo_keywords"`
	CategoryID     *uint               `json:"category_id"`
	Tags           []string            `json:"tags"`
	FeaturedImage  string              `json:"featured_image"`
	Status         string              `json:"status"`
	IsFeatured     *bool               `json:"is_featured"`
	AuthorName     string              `json:"author_name"`
	AuthorEmail    string              `json:"author_email"`
	ScheduledAt    *time.Time          `json:"scheduled_at"`
}

type BlogController struct{}

func NewBlogController() *BlogController {
	return &BlogController{}
}

func getLang(c *gin.Context) string {
	if l := strings.ToLower(strings.TrimSpace(c.Query("lang"))); l != "" {
		return utils.NormalizeLang(l)
	}
	return utils.NormalizeLang(strings.ToLower(strings.TrimSpace(c.GetHeader("Lang"))))
}

// deriveSlugs regenerates the slug for every language whose title is present
// in the payload without an explicit slug. This mirrors the admin form, where
// typing in the title overwrites the slug for the active language.
func deriveSlugs(p *blogPayload) {
	for _, lang := range []string{utils.LangEN, utils.LangBN} {
		if _, hasTitle := p.Title[lang]; hasTitle {
			if _, hasSlug := p.Slug[lang]; !hasSlug {
				p.Slug = p.Slug.Set(lang, utils.Slugify(p.Title[lang], lang))
			}
		}
	}
}

// validateBlogPayload checks required fields for the active language only.
// Language-independent requirements are the featured image and author name.
// Every miss lands in one aggregated message.
func validateBlogPayload(p blogPayload, lang string) []string {
	var missing []string
	if !p.Title.Has(lang) {
		missing = append(missing, "title."+lang)
	}
	if !p.Excerpt.Has(lang) {
		missing = append(missing, "excerpt."+lang)
	}
	if !p.Content.Has(lang) {
		missing = append(missing, "content."+lang)
	}
	if !p.Slug.Has(lang) {
		missing = append(missing, "slug."+lang)
	}
	if p.CategoryID == nil || *p.CategoryID == 0 {
		missing = append(missing, "category")
	}
	if p.FeaturedImage == "" {
		missing = append(missing, "featured_image")
	}
	if p.AuthorName == "" {
		missing = append(missing, "author_name")
	}
	return missing
}

func missingFieldsMessage(missing []string) string {
	return "Missing required fields: " + strings.Join(missing, ", ")
}

// seoAdvisories runs the non-blocking SEO checks for the active language.
// Warnings ride along with a successful response, they never block.
func seoAdvisories(p blogPayload, lang string) []string {
	var warnings []string
	if t := p.SeoTitle.Get(lang); t != "" {
		if n := utf8.RuneCountInString(t); n < 30 || n > 60 {
			warnings = append(warnings, fmt.Sprintf("SEO title is %d characters, 30-60 is recommended", n))
		}
	}
	if d := p.SeoDescription.Get(lang); d != "" {
		if n := utf8.RuneCountInString(d); n < 120 || n > 160 {
			warnings = append(warnings, fmt.Sprintf("SEO description is %d characters, 120-160 is recommended", n))
		}
	}
	if kw := p.SeoKeywords.Get(lang); len(kw) > 10 {
		warnings = append(warnings, fmt.Sprintf("%d SEO keywords, 10 or fewer is recommended", len(kw)))
	}
	return warnings
}

func slugConflictMessage(lang string) string {
	if lang == utils.LangBN {
		return "A post with this Bangla slug already exists. Change the Bangla slug."
	}
	return "A post with this English slug already exists. Change the English slug."
}

// checkSlugConflicts verifies explicitly supplied slugs against the indexed
// slug columns. Auto-derived slugs are uniquified instead (see Create).
func (bc *BlogController) checkSlugConflicts(slugs utils.LocalizedText, excludeID uint) (string, bool, error) {
	db := utils.GetDB()
	for _, lang := range []string{utils.LangEN, utils.LangBN} {
		s := slugs.Get(lang)
		if s == "" {
			continue
		}
		var count int64
		q := db.Model(&models.BlogPost{}).Where(models.SlugColumn(lang)+" = ?", s)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", false, err
		}
		if count > 0 {
			return slugConflictMessage(lang), true, nil
		}
	}
	return "", false, nil
}

// slugRederivations lists the languages whose slug must be re-derived on
// update: the source text changed in the payload and no explicit slug came
// with it.
func slugRederivations(stored, texts, slugs utils.LocalizedText) []string {
	var langs []string
	for _, lang := range []string{utils.LangEN, utils.LangBN} {
		newText, textTouched := texts[lang]
		_, slugTouched := slugs[lang]
		if textTouched && !slugTouched && newText != stored.Get(lang) {
			langs = append(langs, lang)
		}
	}
	return langs
}

// uniquifyDerivedSlugs replaces each re-derived slug with a collision-free
// variant. The lookup is injected so the loop works against any table.
func uniquifyDerivedSlugs(slugs utils.LocalizedText, langs []string, unique func(lang, base string) (string, error)) (utils.LocalizedText, error) {
	for _, lang := range langs {
		u, err := unique(lang, slugs.Get(lang))
		if err != nil {
			return slugs, err
		}
		slugs = slugs.Set(lang, u)
	}
	return slugs, nil
}

func readTimesFor(content utils.LocalizedText) utils.LocalizedInt {
	rt := utils.LocalizedInt{}
	for lang, html := range content {
		if html != "" {
			rt[lang] = utils.EstimateReadTime(html)
		}
	}
	return rt
}

// POST /api/blogs
//
// Create accepts the full bilingual record: every localized field is a
// lang->value map and both languages may arrive in one call.
func (bc *BlogController) Create(c *gin.Context) {
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	lang := utils.NormalizeLang(req.Lang)

	// Remember which slugs the client typed by hand before derivation fills
	// the gaps: hand-typed slugs conflict hard, derived ones get suffixed.
	explicit := utils.LocalizedText{}
	for l, s := range req.Slug {
		explicit[l] = s
	}
	deriveSlugs(&req)

	if missing := validateBlogPayload(req, lang); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": missingFieldsMessage(missing)})
		return
	}
	msg, conflict, err := bc.checkSlugConflicts(explicit, 0)
	if err != nil {
		utils.LogError(err, "blog slug check")
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
		unique, err := utils.UniqueSlug(db, &models.BlogPost{}, models.SlugColumn(l), req.Slug.Get(l), 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate slug"})
			return
		}
		req.Slug = req.Slug.Set(l, unique)
	}

	// Fill the missing excerpt of the inactive language from its content, so
	// list views have something to show for partially translated posts.
	for l, html := range req.Content {
		if html != "" && !req.Excerpt.Has(l) {
			req.Excerpt = req.Excerpt.Set(l, utils.ExcerptFrom(html, 200))
		}
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if status == models.StatusScheduled && req.ScheduledAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "scheduled_at is required for scheduled posts"})
		return
	}

	post := models.BlogPost{
		CategoryID:     req.CategoryID,
		Title:          utils.JSONFrom(req.Title),
		Excerpt:        utils.JSONFrom(req.Excerpt),
		Content:        utils.JSONFrom(req.Content),
		SlugEn:         req.Slug.Get(utils.LangEN),
		SlugBn:         req.Slug.Get(utils.LangBN),
		SeoTitle:       utils.JSONFrom(req.SeoTitle),
		SeoDescription: utils.JSONFrom(req.SeoDescription),
		SeoKeywords:    utils.JSONFrom(req.SeoKeywords),
		Tags:           utils.JSONFrom(req.Tags),
		ReadTime:       utils.JSONFrom(readTimesFor(req.Content)),
		FeaturedImage:  req.FeaturedImage,
		Status:         status,
		AuthorName:     req.AuthorName,
		AuthorEmail:    req.AuthorEmail,
		ScheduledAt:    req.ScheduledAt,
	}
	if req.IsFeatured != nil {
		post.IsFeatured = *req.IsFeatured
	}
	if uid, ok := c.Get("user_id"); ok {
		if id, ok := uid.(uint); ok {
			post.AuthorID = &id
		}
	}
	if status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := db.Create(&post).Error; err != nil {
		utils.LogError(err, "blog create")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create post"})
		return
	}

	result := bc.toAdminItem(post)
	if warnings := seoAdvisories(req, lang); len(warnings) > 0 {
		result["warnings"] = warnings
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": result})
}

// applyBlogPayload overlays the payload onto the stored post: per language,
// a value present in the payload wins, an absent language keeps the stored
// value untouched. Titles changed without an explicit slug re-derive the slug
// for that language. PublishedAt, once set, never changes again.
func applyBlogPayload(post *models.BlogPost, req blogPayload) {
	title := utils.ParseLocalizedText(post.Title)
	slug := utils.LocalizedText{}
	if post.SlugEn != "" {
		slug[utils.LangEN] = post.SlugEn
	}
	if post.SlugBn != "" {
		slug[utils.LangBN] = post.SlugBn
	}

	for _, lang := range slugRederivations(title, req.Title, req.Slug) {
		req.Slug = req.Slug.Set(lang, utils.Slugify(req.Title[lang], lang))
	}

	post.Title = utils.JSONFrom(title.Merge(req.Title))
	post.Excerpt = utils.JSONFrom(utils.ParseLocalizedText(post.Excerpt).Merge(req.Excerpt))
	content := utils.ParseLocalizedText(post.Content).Merge(req.Content)
	post.Content = utils.JSONFrom(content)
	post.SeoTitle = utils.JSONFrom(utils.ParseLocalizedText(post.SeoTitle).Merge(req.SeoTitle))
	post.SeoDescription = utils.JSONFrom(utils.ParseLocalizedText(post.SeoDescription).Merge(req.SeoDescription))
	post.SeoKeywords = utils.JSONFrom(utils.ParseLocalizedList(post.SeoKeywords).Merge(req.SeoKeywords))
	post.ReadTime = utils.JSONFrom(readTimesFor(content))

	merged := slug.Merge(req.Slug)
	post.SlugEn = merged.Get(utils.LangEN)
	post.SlugBn = merged.Get(utils.LangBN)

	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Tags != nil {
		post.Tags = utils.JSONFrom(req.Tags)
	}
	if req.FeaturedImage != "" {
		post.FeaturedImage = req.FeaturedImage
	}
	if req.AuthorName != "" {
		post.AuthorName = req.AuthorName
	}
	if req.AuthorEmail != "" {
		post.AuthorEmail = req.AuthorEmail
	}
	if req.IsFeatured != nil {
		post.IsFeatured = *req.IsFeatured
	}
	if req.ScheduledAt != nil {
		post.ScheduledAt = req.ScheduledAt
	}
	if req.Status != "" {
		if req.Status == models.StatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = req.Status
	}
}

// PUT /api/blogs/:id
func (bc *BlogController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	lang := utils.NormalizeLang(req.Lang)

	db := utils.GetDB()
	var post models.BlogPost
	if err := db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
		return
	}

	msg, conflict, err := bc.checkSlugConflicts(req.Slug, post.ID)
	if err != nil {
		utils.LogError(err, "blog slug check")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to check slug availability"})
		return
	}
	if conflict {
		c.JSON(http.StatusConflict, gin.H{"success": false, "result": nil, "error": msg})
		return
	}

	// Hand-typed slugs conflicted hard above; slugs re-derived from a
	// changed title get suffixed past collisions instead, like Create does.
	rederived := slugRederivations(utils.ParseLocalizedText(post.Title), req.Title, req.Slug)

	applyBlogPayload(&post, req)

	if len(rederived) > 0 {
		slugs := utils.LocalizedText{utils.LangEN: post.SlugEn, utils.LangBN: post.SlugBn}
		slugs, err = uniquifyDerivedSlugs(slugs, rederived, func(lang, base string) (string, error) {
			return utils.UniqueSlug(db, &models.BlogPost{}, models.SlugColumn(lang), base, post.ID)
		})
		if err != nil {
			utils.LogError(err, "blog slug uniquify")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate slug"})
			return
		}
		post.SlugEn = slugs.Get(utils.LangEN)
		post.SlugBn = slugs.Get(utils.LangBN)
	}

	// The merged record must still satisfy the active language's requirements.
	merged := blogPayload{
		Title:         utils.ParseLocalizedText(post.Title),
		Excerpt:       utils.ParseLocalizedText(post.Excerpt),
		Content:       utils.ParseLocalizedText(post.Content),
		Slug:          utils.LocalizedText{utils.LangEN: post.SlugEn, utils.LangBN: post.SlugBn},
		CategoryID:    post.CategoryID,
		FeaturedImage: post.FeaturedImage,
		AuthorName:    post.AuthorName,
	}
	if missing := validateBlogPayload(merged, lang); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": missingFieldsMessage(missing)})
		return
	}

	if err := db.Save(&post).Error; err != nil {
		utils.LogError(err, "blog update")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update post"})
		return
	}

	result := bc.toAdminItem(post)
	if warnings := seoAdvisories(req, lang); len(warnings) > 0 {
		result["warnings"] = warnings
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// DELETE /api/blogs/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	db := utils.GetDB()
	if err := db.Delete(&models.BlogPost{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": id}})
}

type bulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// applyBulkDelete runs del per id independently. Successes stay committed
// even when later ids fail; failures are only counted, never rolled back.
// deleted is never nil so the response serializes [] rather than null.
func applyBulkDelete(ids []uint, del func(uint) error) (deleted []uint, failed []uint) {
	deleted = []uint{}
	for _, id := range ids {
		if err := del(id); err != nil {
			failed = append(failed, id)
			continue
		}
		deleted = append(deleted, id)
	}
	return deleted, failed
}

// POST /api/blogs/bulk-delete
func (bc *BlogController) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "ids is required"})
		return
	}
	db := utils.GetDB()
	deleted, failed := applyBulkDelete(req.IDs, func(id uint) error {
		res := db.Delete(&models.BlogPost{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post %d not found", id)
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

// GET /api/blogs
// Query: ?lang=en&category=tech&search=a&featured=true&page=1&limit=20
func (bc *BlogController) List(c *gin.Context) {
	db := utils.GetDB()
	lang := getLang(c)
	page := 1
	limit := 20
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			limit = n
		}
	}

	q := db.Model(&models.BlogPost{}).Where("status = ?", models.StatusPublished)
	if categorySlug := strings.TrimSpace(c.Query("category")); categorySlug != "" {
		var cat models.Category
		if err := db.Where(models.SlugColumn(lang)+" = ?", categorySlug).First(&cat).Error; err == nil {
			q = q.Where("category_id = ?", cat.ID)
		} else {
			q = q.Where("1 = 0")
		}
	}
	if c.Query("featured") == "true" {
		q = q.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		p := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(slug_en) LIKE ? OR slug_bn LIKE ? OR LOWER(title::text) LIKE ? OR LOWER(excerpt::text) LIKE ?)", p, "%"+search+"%", p, p)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count posts"})
		return
	}
	var posts []models.BlogPost
	if err := q.Preload("Category").Order("published_at desc").Offset((page - 1) * limit).Limit(limit).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch posts"})
		return
	}

	items := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		items = append(items, bc.toLocalizedItem(p, lang))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"limit":       limit,
			"total_count": total,
			"data":        items,
		},
	})
}

// GET /api/blogs/slug/:lang/:slug
func (bc *BlogController) GetBySlug(c *gin.Context) {
	lang := utils.NormalizeLang(c.Param("lang"))
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid slug"})
		return
	}
	db := utils.GetDB()
	var post models.BlogPost
	if err := db.Preload("Category").Where(models.SlugColumn(lang)+" = ? AND status = ?", slug, models.StatusPublished).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
		return
	}
	bc.countView(c, &post)
	c.JSON(http.StatusOK, gin.H{"success": true, "result": bc.toLocalizedItem(post, lang)})
}

// GET /api/blogs/:id (admin: full bilingual record)
func (bc *BlogController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return
	}
	db := utils.GetDB()
	var post models.BlogPost
	if err := db.Preload("Category").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": bc.toAdminItem(post)})
}

// GET /api/admin/blogs (any status, for the dashboard tables)
func (bc *BlogController) AdminList(c *gin.Context) {
	db := utils.GetDB()
	page := 1
	limit := 20
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
	q := db.Model(&models.BlogPost{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count posts"})
		return
	}
	var posts []models.BlogPost
	if err := q.Preload("Category").Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch posts"})
		return
	}
	items := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		items = append(items, bc.toAdminItem(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"limit":       limit,
			"total_count": total,
			"data":        items,
		},
	})
}

// countView bumps the view counter at most once per client IP per hour.
func (bc *BlogController) countView(c *gin.Context, post *models.BlogPost) {
	rdb := utils.GetRedis()
	if rdb == nil {
		return
	}
	key := fmt.Sprintf("view:%d:%s", post.ID, c.ClientIP())
	ok, err := rdb.SetNX(context.Background(), key, 1, time.Hour).Result()
	if err != nil || !ok {
		return
	}
	utils.GetDB().Model(post).UpdateColumn("views", gorm.Expr("views + 1"))
}

func (bc *BlogController) toLocalizedItem(p models.BlogPost, lang string) gin.H {
	title := utils.ParseLocalizedText(p.Title)
	if !title.Has(lang) {
		lang = title.PreferredLang()
	}
	slug := p.SlugEn
	if lang == utils.LangBN {
		slug = p.SlugBn
	}
	item := gin.H{
		"id":              p.ID,
		"lang":            lang,
		"title":           title.Get(lang),
		"excerpt":         utils.ParseLocalizedText(p.Excerpt).Get(lang),
		"content":         utils.ParseLocalizedText(p.Content).Get(lang),
		"slug":            slug,
		"seo_title":       utils.ParseLocalizedText(p.SeoTitle).Get(lang),
		"seo_description": utils.ParseLocalizedText(p.SeoDescription).Get(lang),
		"seo_keywords":    utils.ParseLocalizedList(p.SeoKeywords).Get(lang),
		"tags":            utils.ParseStringSlice(p.Tags),
		"read_time":       utils.ParseLocalizedInt(p.ReadTime).Get(lang),
		"featured_image":  p.FeaturedImage,
		"is_featured":     p.IsFeatured,
		"author_name":     p.AuthorName,
		"views":           p.Views,
		"published_at":    p.PublishedAt,
	}
	if p.Category != nil {
		item["category"] = gin.H{
			"id":   p.Category.ID,
			"name": utils.ParseLocalizedText(p.Category.Name).Get(lang),
			"slug": map[string]string{utils.LangEN: p.Category.SlugEn, utils.LangBN: p.Category.SlugBn}[lang],
		}
	}
	return item
}

func (bc *BlogController) toAdminItem(p models.BlogPost) gin.H {
	item := gin.H{
		"id":              p.ID,
		"created_at":      p.CreatedAt.Format(time.RFC3339),
		"updated_at":      p.UpdatedAt.Format(time.RFC3339),
		"title":           utils.ParseLocalizedText(p.Title),
		"excerpt":         utils.ParseLocalizedText(p.Excerpt),
		"content":         utils.ParseLocalizedText(p.Content),
		"slug":            gin.H{utils.LangEN: p.SlugEn, utils.LangBN: p.SlugBn},
		"seo_title":       utils.ParseLocalizedText(p.SeoTitle),
		"seo_description": utils.ParseLocalizedText(p.SeoDescription),
		"seo_keywords":    utils.ParseLocalizedList(p.SeoKeywords),
		"tags":            utils.ParseStringSlice(p.Tags),
		"read_time":       utils.ParseLocalizedInt(p.ReadTime),
		"featured_image":  p.FeaturedImage,
		"status":          p.Status,
		"is_featured":     p.IsFeatured,
		"category_id":     p.CategoryID,
		"author_id":       p.AuthorID,
		"author_name":     p.AuthorName,
		"author_email":    p.AuthorEmail,
		"views":           p.Views,
		"published_at":    p.PublishedAt,
		"scheduled_at":    p.ScheduledAt,
	}
	if p.Category != nil {
		item["category"] = gin.H{
			"id":   p.Category.ID,
			"name": utils.ParseLocalizedText(p.Category.Name),
			"slug": gin.H{utils.LangEN: p.Category.SlugEn, utils.LangBN: p.Category.SlugBn},
		}
	}
	return item
}
