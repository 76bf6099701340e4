package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`

	IsStaff     bool `gorm:"default:false" json:"isStaff"`
	IsSuperuser bool `gorm:"default:false" json:"isSuperuser"`

	// preload only when an order listing needs the placing user
	Orders []Order `json:"-"`
}
