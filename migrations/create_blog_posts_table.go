package migrations

import "gorm.io/gorm"

// CreateBlogPostsTable creates blog_posts with partial unique indexes on the
// per-language slug columns, so empty slugs (untranslated posts) never
// collide while real slugs stay unique per language.
func CreateBlogPostsTable(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS blog_posts (
			id SERIAL PRIMARY KEY,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE,
			category_id INTEGER,
			title JSONB,
			excerpt JSONB,
			content JSONB,
			slug_en VARCHAR(255) DEFAULT '',
			slug_bn VARCHAR(255) DEFAULT '',
			seo_title JSONB,
			seo_description JSONB,
			seo_keywords JSONB,
			tags JSONB,
			read_time JSONB,
			featured_image TEXT DEFAULT '',
			status VARCHAR(20) DEFAULT 'draft',
			is_featured BOOLEAN DEFAULT FALSE,
			author_id INTEGER,
			author_name VARCHAR(255) DEFAULT '',
			author_email VARCHAR(255) DEFAULT '',
			views BIGINT DEFAULT 0,
			published_at TIMESTAMP WITH TIME ZONE,
			scheduled_at TIMESTAMP WITH TIME ZONE
		);

		CREATE INDEX IF NOT EXISTS idx_blog_posts_category_id ON blog_posts(category_id);
		CREATE INDEX IF NOT EXISTS idx_blog_posts_status ON blog_posts(status);
		CREATE INDEX IF NOT EXISTS idx_blog_posts_is_featured ON blog_posts(is_featured);
		CREATE INDEX IF NOT EXISTS idx_blog_posts_author_id ON blog_posts(author_id);
		CREATE INDEX IF NOT EXISTS idx_blog_posts_published_at ON blog_posts(published_at DESC);
		CREATE INDEX IF NOT EXISTS idx_blog_posts_scheduled_at ON blog_posts(scheduled_at);
		CREATE INDEX IF NOT EXISTS idx_blog_posts_deleted_at ON blog_posts(deleted_at);

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_blog_posts_slug_en
		ON blog_posts(slug_en) WHERE slug_en <> '' AND deleted_at IS NULL;

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_blog_posts_slug_bn
		ON blog_posts(slug_bn) WHERE slug_bn <> '' AND deleted_at IS NULL;
	`).Error
}
