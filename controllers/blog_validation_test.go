package controllers

import (
	"fmt"
	"testing"
	"time"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func validEnglishPayload() blogPayload {
	return blogPayload{
		Lang:          utils.LangEN,
		Title:         utils.LocalizedText{utils.LangEN: "Test"},
		Excerpt:       utils.LocalizedText{utils.LangEN: "Test excerpt"},
		Content:       utils.LocalizedText{utils.LangEN: "Body"},
		Slug:          utils.LocalizedText{utils.LangEN: "test"},
		CategoryID:    uintPtr(1),
		FeaturedImage: "/uploads/test.jpg",
		AuthorName:    "Reporter",
	}
}

func TestValidateBlogPayloadActiveLanguageOnly(t *testing.T) {
	// A complete English draft with an empty Bangla half must pass when
	// English is the active language.
	p := validEnglishPayload()
	assert.Empty(t, validateBlogPayload(p, utils.LangEN))

	// The same draft validated as Bangla misses every localized field.
	missing := validateBlogPayload(p, utils.LangBN)
	assert.Contains(t, missing, "title.bn")
	assert.Contains(t, missing, "excerpt.bn")
	assert.Contains(t, missing, "content.bn")
	assert.Contains(t, missing, "slug.bn")
	assert.NotContains(t, missing, "featured_image")
	assert.NotContains(t, missing, "author_name")
}

func TestValidateBlogPayloadAggregatesMisses(t *testing.T) {
	p := blogPayload{Lang: utils.LangEN}
	missing := validateBlogPayload(p, utils.LangEN)
	assert.Len(t, missing, 7)
	msg := missingFieldsMessage(missing)
	assert.Contains(t, msg, "Missing required fields:")
	assert.Contains(t, msg, "title.en")
	assert.Contains(t, msg, "category")
	assert.Contains(t, msg, "featured_image")
}

func TestDeriveSlugs(t *testing.T) {
	p := blogPayload{
		Title: utils.LocalizedText{utils.LangEN: "Hello World!", utils.LangBN: "নিউজ এন্ড নিশ"},
	}
	deriveSlugs(&p)
	assert.Equal(t, "hello-world", p.Slug.Get(utils.LangEN))
	assert.Equal(t, "নিউজ-এন্ড-নিশ", p.Slug.Get(utils.LangBN))

	// A hand-typed slug survives derivation.
	p2 := blogPayload{
		Title: utils.LocalizedText{utils.LangEN: "Hello World!"},
		Slug:  utils.LocalizedText{utils.LangEN: "custom-slug"},
	}
	deriveSlugs(&p2)
	assert.Equal(t, "custom-slug", p2.Slug.Get(utils.LangEN))
}

func TestSeoAdvisoriesNonBlocking(t *testing.T) {
	p := validEnglishPayload()
	// Nothing set: no warnings.
	assert.Empty(t, seoAdvisories(p, utils.LangEN))

	p.SeoTitle = utils.LocalizedText{utils.LangEN: "too short"}
	p.SeoKeywords = utils.LocalizedList{utils.LangEN: make([]string, 11)}
	warnings := seoAdvisories(p, utils.LangEN)
	assert.Len(t, warnings, 2)

	// Advisories never affect validation.
	assert.Empty(t, validateBlogPayload(p, utils.LangEN))
}

func TestApplyBlogPayloadPreservesUntouchedLanguage(t *testing.T) {
	post := models.BlogPost{
		Title:   utils.JSONFrom(utils.LocalizedText{utils.LangEN: "English title", utils.LangBN: "বাংলা শিরোনাম"}),
		Excerpt: utils.JSONFrom(utils.LocalizedText{utils.LangEN: "English excerpt"}),
		Content: utils.JSONFrom(utils.LocalizedText{utils.LangEN: "English body", utils.LangBN: "বাংলা লেখা"}),
		SlugEn:  "english-title",
		SlugBn:  "বাংলা-শিরোনাম",
	}

	applyBlogPayload(&post, blogPayload{
		Lang:    utils.LangBN,
		Title:   utils.LocalizedText{utils.LangBN: "নতুন শিরোনাম"},
		Content: utils.LocalizedText{utils.LangBN: "নতুন লেখা"},
	})

	title := utils.ParseLocalizedText(post.Title)
	assert.Equal(t, "English title", title.Get(utils.LangEN))
	assert.Equal(t, "নতুন শিরোনাম", title.Get(utils.LangBN))
	assert.Equal(t, "English excerpt", utils.ParseLocalizedText(post.Excerpt).Get(utils.LangEN))
	assert.Equal(t, "English body", utils.ParseLocalizedText(post.Content).Get(utils.LangEN))
	assert.Equal(t, "english-title", post.SlugEn)
	// The changed Bangla title re-derives the Bangla slug only.
	assert.Equal(t, "নতুন-শিরোনাম", post.SlugBn)
}

func TestApplyBlogPayloadExplicitSlugWins(t *testing.T) {
	post := models.BlogPost{
		Title:  utils.JSONFrom(utils.LocalizedText{utils.LangEN: "Old"}),
		SlugEn: "old",
	}
	applyBlogPayload(&post, blogPayload{
		Title: utils.LocalizedText{utils.LangEN: "Brand New Title"},
		Slug:  utils.LocalizedText{utils.LangEN: "keep-this-slug"},
	})
	assert.Equal(t, "keep-this-slug", post.SlugEn)
}

func TestApplyBlogPayloadPublishedAtImmutable(t *testing.T) {
	published := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	post := models.BlogPost{
		Status:      models.StatusPublished,
		PublishedAt: &published,
	}
	applyBlogPayload(&post, blogPayload{Status: models.StatusArchived})
	assert.Equal(t, models.StatusArchived, post.Status)
	assert.Equal(t, published, *post.PublishedAt)

	// Re-publishing an archived post keeps the original timestamp.
	applyBlogPayload(&post, blogPayload{Status: models.StatusPublished})
	assert.Equal(t, published, *post.PublishedAt)
}

func TestApplyBlogPayloadFirstPublishSetsTimestamp(t *testing.T) {
	post := models.BlogPost{Status: models.StatusDraft}
	applyBlogPayload(&post, blogPayload{Status: models.StatusPublished})
	assert.NotNil(t, post.PublishedAt)
}

func TestSlugRederivations(t *testing.T) {
	stored := utils.LocalizedText{utils.LangEN: "Old Title", utils.LangBN: "পুরনো"}

	// Changed title without an explicit slug re-derives that language only.
	langs := slugRederivations(stored,
		utils.LocalizedText{utils.LangEN: "New Title"},
		utils.LocalizedText{})
	assert.Equal(t, []string{utils.LangEN}, langs)

	// An explicit slug in the same request suppresses re-derivation.
	langs = slugRederivations(stored,
		utils.LocalizedText{utils.LangEN: "New Title"},
		utils.LocalizedText{utils.LangEN: "hand-typed"})
	assert.Empty(t, langs)

	// An unchanged title leaves the slug alone.
	langs = slugRederivations(stored,
		utils.LocalizedText{utils.LangEN: "Old Title"},
		utils.LocalizedText{})
	assert.Empty(t, langs)

	// Both languages changed, neither slug supplied.
	langs = slugRederivations(stored,
		utils.LocalizedText{utils.LangEN: "New Title", utils.LangBN: "নতুন"},
		utils.LocalizedText{})
	assert.Equal(t, []string{utils.LangEN, utils.LangBN}, langs)
}

func TestUpdateRederivedSlugCollision(t *testing.T) {
	// Another post already owns "hello-world". Updating this post's title to
	// "Hello World!" without a slug must come out suffixed, not erroring.
	post := models.BlogPost{
		Title:  utils.JSONFrom(utils.LocalizedText{utils.LangEN: "Old Title"}),
		SlugEn: "old-title",
	}
	req := blogPayload{Title: utils.LocalizedText{utils.LangEN: "Hello World!"}}

	rederived := slugRederivations(utils.ParseLocalizedText(post.Title), req.Title, req.Slug)
	applyBlogPayload(&post, req)
	assert.Equal(t, "hello-world", post.SlugEn)

	taken := map[string]bool{"hello-world": true}
	slugs, err := uniquifyDerivedSlugs(
		utils.LocalizedText{utils.LangEN: post.SlugEn, utils.LangBN: post.SlugBn},
		rederived,
		func(lang, base string) (string, error) {
			if taken[base] {
				return base + "-2", nil
			}
			return base, nil
		})
	assert.NoError(t, err)
	assert.Equal(t, "hello-world-2", slugs.Get(utils.LangEN))
}

func TestUniquifyDerivedSlugsPropagatesError(t *testing.T) {
	_, err := uniquifyDerivedSlugs(
		utils.LocalizedText{utils.LangEN: "hello"},
		[]string{utils.LangEN},
		func(lang, base string) (string, error) {
			return "", fmt.Errorf("connection reset")
		})
	assert.Error(t, err)
}

func TestApplyBulkDeletePartialFailure(t *testing.T) {
	failing := uint(2)
	deleted, failed := applyBulkDelete([]uint{1, 2, 3}, func(id uint) error {
		if id == failing {
			return fmt.Errorf("boom")
		}
		return nil
	})
	// Items 1 and 3 stay deleted even though 2 failed in between.
	assert.Equal(t, []uint{1, 3}, deleted)
	assert.Equal(t, []uint{2}, failed)
}

func TestApplyBulkDeleteAllFailKeepsDeletedNonNil(t *testing.T) {
	deleted, failed := applyBulkDelete([]uint{7, 8}, func(uint) error {
		return fmt.Errorf("boom")
	})
	// deleted must serialize as [] rather than null when nothing succeeded.
	assert.NotNil(t, deleted)
	assert.Empty(t, deleted)
	assert.Equal(t, []uint{7, 8}, failed)
}

func TestSlugConflictMessages(t *testing.T) {
	assert.Contains(t, slugConflictMessage(utils.LangEN), "English slug")
	assert.Contains(t, slugConflictMessage(utils.LangBN), "Bangla slug")
}
