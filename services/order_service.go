package services

import (
	"errors"
	"strings"

	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"gorm.io/gorm"
)

// Race and validation outcomes the controller maps onto HTTP statuses.
var (
	ErrEmptyOrder       = errors.New("items required")
	ErrItemNotFound     = errors.New("item not found")
	ErrTableUnavailable = errors.New("table not available")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotPending  = errors.New("order not pending")
	ErrSettlementFields = errors.New("name and phone number required")
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	ItemRepo  *repository.ItemRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	itemRepo *repository.ItemRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, ItemRepo: itemRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderReq struct {
	TableID *uint         `json:"table_id"`
	Items   []OrderItemIn `json:"items" binding:"required"`
}

// PlaceOrder creates a pending order and, for in-place orders, claims the
// table in the same transaction. The table claim is a guarded update, so
// two sessions racing for one table resolve to exactly one winner; the
// loser gets ErrTableUnavailable and nothing is created for it.
func (s *OrderService) PlaceOrder(userID uint, req *PlaceOrderReq) (*OrderOut, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// validate items up front, outside the transaction
	for _, it := range req.Items {
		if _, err := s.ItemRepo.Get(it.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, err
		}
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if req.TableID != nil {
			affected, err := s.TableRepo.Reserve(tx, *req.TableID)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrTableUnavailable
			}
		}

		order := entity.Order{
			UserID:  userID,
			TableID: req.TableID,
			Status:  entity.OrderPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range req.Items {
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			oi := entity.OrderItem{OrderID: order.ID, ItemID: it.ItemID, Quantity: qty}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.GetOrderLoaded(orderID)
	if err != nil {
		return nil, err
	}
	out := SerializeOrder(o)
	return &out, nil
}

// Checkout settles a pending order: records the payer identity, marks it
// completed and releases its table. The pending->completed move is a
// guarded update so at most one of any concurrent checkouts wins.
func (s *OrderService) Checkout(orderID, userID uint, superuser bool, name, phone string) (*OrderOut, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, ErrSettlementFields
	}

	o, err := s.Repo.GetOrderScoped(orderID, userID, superuser)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.Status != entity.OrderPending {
		return nil, ErrOrderNotPending
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CompleteGuard(tx, o.ID, name, phone)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotPending
		}
		if o.TableID != nil {
			return s.TableRepo.Release(tx, *o.TableID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err = s.Repo.GetOrderLoaded(o.ID)
	if err != nil {
		return nil, err
	}
	out := SerializeOrder(o)
	return &out, nil
}

func (s *OrderService) List(userID uint, superuser bool) ([]OrderOut, error) {
	orders, err := s.Repo.ListOrders(userID, superuser)
	if err != nil {
		return nil, err
	}
	return SerializeOrders(orders), nil
}
