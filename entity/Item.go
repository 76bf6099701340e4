package entity

import (
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`
}
