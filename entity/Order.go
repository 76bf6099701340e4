package entity

import (
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

type Order struct {
	gorm.Model
	Status string `gorm:"not null;default:pending" json:"status"`

	// settlement identity, filled in at checkout time only
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	// nil table = delivery order
	TableID *uint  `json:"tableId"`
	Table   *Table `json:"-"`

	Items []OrderItem `json:"-"`
}
