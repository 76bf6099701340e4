package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots item + quantity at placement time.
// Quantities are immutable once the order exists.
type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null;default:1" json:"quantity"`

	OrderID uint  `gorm:"uniqueIndex:idx_order_item" json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `gorm:"uniqueIndex:idx_order_item" json:"itemId"`
	Item   Item `json:"-"`
}
