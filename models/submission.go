package models

import "gorm.io/gorm"

const (
	SubmissionNew      = "new"
	SubmissionReviewed = "reviewed"
	SubmissionAccepted = "accepted"
	SubmissionRejected = "rejected"
)

// GuestPost is a public pitch for a guest article.
type GuestPost struct {
	gorm.Model
	Name    string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(255);not null;index"`
	Website string `gorm:"type:text"`
	Topic   string `gorm:"type:varchar(255);not null"`
	Message string `gorm:"type:text"`
	Status  string `gorm:"type:varchar(20);default:new;index"`
}

// SponsoredPost is a public sponsorship inquiry.
type SponsoredPost struct {
	gorm.Model
	Name        string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null;index"`
	Company     string `gorm:"type:varchar(255)"`
	ProductName string `gorm:"type:varchar(255)"`
	Budget      string `gorm:"type:varchar(100)"`
	Message     string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(20);default:new;index"`
}
