package entity

import (
	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
)

type Table struct {
	gorm.Model
	Number string `gorm:"uniqueIndex;not null" json:"number"`
	Seats  int    `gorm:"default:4" json:"seats"`
	Status string `gorm:"not null;default:available" json:"status"`
	Note   string `json:"note"`

	Orders []Order `json:"-"`
}
