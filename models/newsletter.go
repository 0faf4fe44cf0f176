package models

import "gorm.io/gorm"

type NewsletterSubscriber struct {
	gorm.Model
	Email            string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Locale           string `gorm:"type:varchar(2);default:en"`
	Confirmed        bool   `gorm:"default:true"`
	UnsubscribeToken string `gorm:"type:varchar(64);uniqueIndex"`
}
