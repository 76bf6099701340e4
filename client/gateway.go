package client

import (
	"context"
	"encoding/json"
	"time"
)

// Status values observed through the gateway. Anything other than
// "available" counts as not selectable.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"

	OrderPending   = "pending"
	OrderCompleted = "completed"
)

type Table struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (t Table) Available() bool {
	return t.Status == TableAvailable
}

type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Available   bool   `json:"available"`
}

type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// OrderUser tolerates both shapes the orders endpoint has been seen to
// emit: an embedded user object or a bare username string.
type OrderUser struct {
	User
}

func (u *OrderUser) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &u.Username)
	}
	return json.Unmarshal(b, &u.User)
}

type OrderLine struct {
	ID       int      `json:"id"`
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

type Order struct {
	ID         int         `json:"id"`
	User       OrderUser   `json:"user"`
	Table      *Table      `json:"table"`
	Status     string      `json:"status"`
	Items      []OrderLine `json:"items"`
	Name       string      `json:"name"`
	TotalPrice Money       `json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
}

// InPlace reports whether the order holds a table (dine-in) as opposed to
// a delivery order.
func (o Order) InPlace() bool {
	return o.Table != nil
}

type PlaceOrderItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type PlaceOrderRequest struct {
	TableID *int             `json:"table_id,omitempty"`
	Items   []PlaceOrderItem `json:"items"`
}

// Gateway is the remote system of record for tables, items, orders and
// users. It is the sole serialization point between concurrent staff
// sessions; every mutating call may race another session's identical call
// and lose.
type Gateway interface {
	Tables(ctx context.Context) ([]Table, error)
	Items(ctx context.Context) ([]MenuItem, error)
	Orders(ctx context.Context) ([]Order, error)
	Users(ctx context.Context) ([]User, error)

	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)
	Checkout(ctx context.Context, orderID int, name, phone string) (*Order, error)
}
