package repository

import (
	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// GetOrderLoaded fetches an order with user, table and item rows attached,
// the shape the API serializes.
func (r *OrderRepository) GetOrderLoaded(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("User").
		Preload("Table").
		Preload("Items").
		Preload("Items.Item").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderScoped is GetOrderLoaded restricted to the caller's own orders
// unless the caller is a superuser.
func (r *OrderRepository) GetOrderScoped(orderID, userID uint, superuser bool) (*entity.Order, error) {
	db := r.DB.
		Preload("User").
		Preload("Table").
		Preload("Items").
		Preload("Items.Item")
	if !superuser {
		db = db.Where("user_id = ?", userID)
	}
	var o entity.Order
	if err := db.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns all orders for superusers, otherwise only the
// caller's, newest first.
func (r *OrderRepository) ListOrders(userID uint, superuser bool) ([]entity.Order, error) {
	db := r.DB.
		Preload("User").
		Preload("Table").
		Preload("Items").
		Preload("Items.Item").
		Order("created_at DESC")
	if !superuser {
		db = db.Where("user_id = ?", userID)
	}
	var orders []entity.Order
	err := db.Find(&orders).Error
	return orders, err
}

// CompleteGuard moves pending -> completed and stamps the settlement
// identity in one conditional update. Zero rows affected means the order
// was no longer pending (double checkout, concurrent session).
func (r *OrderRepository) CompleteGuard(tx *gorm.DB, orderID uint, name, phone string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderPending).
		Updates(map[string]any{
			"status":       entity.OrderCompleted,
			"name":         name,
			"phone_number": phone,
		})
	return res.RowsAffected, res.Error
}
