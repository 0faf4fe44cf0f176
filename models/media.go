package models

import "gorm.io/gorm"

// Media is one stored upload, served from the /uploads static route.
type Media struct {
	gorm.Model
	FileName   string `gorm:"type:varchar(255);not null"`
	URL        string `gorm:"type:text;not null"`
	MimeType   string `gorm:"type:varchar(100)"`
	SizeBytes  int64
	UploadedBy *uint `gorm:"index"`
}
