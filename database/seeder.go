package database

import (
	"newsandniche/models"
	"newsandniche/utils"

	"gorm.io/gorm"
)

// SeedCategories fills an empty categories table with the site's default
// bilingual sections.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type seed struct {
		en, bn, slugBn, color, icon string
		sort                        int
	}
	seeds := []seed{
		{"News", "নিউজ", "নিউজ", "#EF4444", "newspaper", 1},
		{"Technology", "প্রযুক্তি", "প্রযুক্তি", "#3B82F6", "cpu", 2},
		{"Reviews", "রিভিউ", "রিভিউ", "#8B5CF6", "star", 3},
		{"Deals", "ডিল", "ডিল", "#F59E0B", "tag", 4},
		{"Best Products", "সেরা পণ্য", "সেরা-পণ্য", "#10B981", "trophy", 5},
		{"Lifestyle", "লাইফস্টাইল", "লাইফস্টাইল", "#EC4899", "heart", 6},
	}

	categories := make([]models.Category, 0, len(seeds))
	for _, s := range seeds {
		categories = append(categories, models.Category{
			Name:        utils.JSONFrom(utils.LocalizedText{utils.LangEN: s.en, utils.LangBN: s.bn}),
			Description: utils.JSONFrom(utils.LocalizedText{}),
			SlugEn:      utils.Slugify(s.en, utils.LangEN),
			SlugBn:      s.slugBn,
			Color:       s.color,
			Icon:        s.icon,
			IsActive:    true,
			SortOrder:   s.sort,
		})
	}
	return db.Create(&categories).Error
}
