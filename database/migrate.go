package database

import (
	"newsandniche/migrations"
	"newsandniche/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Media{},
		&models.NewsletterSubscriber{},
		&models.GuestPost{},
		&models.SponsoredPost{},
	); err != nil {
		return err
	}

	// Content tables carry partial unique slug indexes AutoMigrate cannot
	// express, so they are raw SQL.
	if err := migrations.CreateCategoriesTable(db); err != nil {
		return err
	}
	if err := migrations.CreateBlogPostsTable(db); err != nil {
		return err
	}

	return nil
}
