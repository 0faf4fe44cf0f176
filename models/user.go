package models

import "gorm.io/gorm"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

type User struct {
	gorm.Model
	Email     *string `gorm:"uniqueIndex"`
	Password  string
	Name      *string
	Role      string `gorm:"default:user"`
	Avatar    *string
	Bio       *string
	Confirmed bool `gorm:"default:false"`
	GoogleID  *string
}
