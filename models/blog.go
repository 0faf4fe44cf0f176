package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// BlogPost stores bilingual content as per-field jsonb maps keyed by language
// code. Slugs are flattened into dedicated indexed columns so uniqueness
// checks stay one lookup per language.
type BlogPost struct {
	gorm.Model
	CategoryID     *uint          `gorm:"index"`
	Category       *Category      `gorm:"foreignKey:CategoryID"`
	Title          datatypes.JSON `gorm:"type:jsonb"`
	Excerpt        datatypes.JSON `gorm:"type:jsonb"`
	Content        datatypes.JSON `gorm:"type:jsonb"`
	SlugEn         string         `gorm:"type:varchar(255);index"`
	SlugBn         string         `gorm:"type:varchar(255);index"`
	SeoTitle       datatypes.JSON `gorm:"type:jsonb"`
	SeoDescription datatypes.JSON `gorm:"type:jsonb"`
	SeoKeywords    datatypes.JSON `gorm:"type:jsonb"`
	Tags           datatypes.JSON `gorm:"type:jsonb"`
	ReadTime       datatypes.JSON `gorm:"type:jsonb"`
	FeaturedImage  string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(20);default:draft;index"`
	IsFeatured     bool           `gorm:"default:false;index"`
	AuthorID       *uint          `gorm:"index"`
	AuthorName     string         `gorm:"type:varchar(255)"`
	AuthorEmail    string         `gorm:"type:varchar(255)"`
	Views          int64          `gorm:"default:0"`
	PublishedAt    *time.Time     `gorm:"index"`
	ScheduledAt    *time.Time     `gorm:"index"`
}

// SlugColumn maps a language code to the flattened slug column.
func SlugColumn(lang string) string {
	if lang == "bn" {
		return "slug_bn"
	}
	return "slug_en"
}
