package migrations

import "gorm.io/gorm"

// CreateCategoriesTable mirrors the slug indexing scheme of blog_posts.
func CreateCategoriesTable(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE,
			name JSONB,
			description JSONB,
			slug_en VARCHAR(255) DEFAULT '',
			slug_bn VARCHAR(255) DEFAULT '',
			color VARCHAR(20) DEFAULT '#3B82F6',
			icon VARCHAR(50) DEFAULT '',
			is_active BOOLEAN DEFAULT TRUE,
			sort_order INTEGER DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_categories_is_active ON categories(is_active);
		CREATE INDEX IF NOT EXISTS idx_categories_sort_order ON categories(sort_order);
		CREATE INDEX IF NOT EXISTS idx_categories_deleted_at ON categories(deleted_at);

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_categories_slug_en
		ON categories(slug_en) WHERE slug_en <> '' AND deleted_at IS NULL;

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_categories_slug_bn
		ON categories(slug_bn) WHERE slug_bn <> '' AND deleted_at IS NULL;
	`).Error
}
