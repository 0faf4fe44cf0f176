package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        datatypes.JSON `gorm:"type:jsonb"`
	Description datatypes.JSON `gorm:"type:jsonb"`
	SlugEn      string         `gorm:"type:varchar(255);index"`
	SlugBn      string         `gorm:"type:varchar(255);index"`
	Color       string         `gorm:"type:varchar(20);default:#3B82F6"`
	Icon        string         `gorm:"type:varchar(50)"`
	IsActive    bool           `gorm:"default:true;index"`
	SortOrder   int            `gorm:"default:0;index"`
}
