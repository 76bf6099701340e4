package services

import (
	"math"
	"time"

	"github.com/vaishnavisherala/RestaurantSystem/entity"
)

// Wire DTOs for the /api contract. Field names are snake_case on the wire
// regardless of how the entities name them internally.

type UserOut struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type TableOut struct {
	ID     uint   `json:"id"`
	Number string `json:"number"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

type ItemOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

type OrderItemOut struct {
	ID       uint    `json:"id"`
	Item     ItemOut `json:"item"`
	Quantity int     `json:"quantity"`
}

type OrderOut struct {
	ID         uint           `json:"id"`
	User       UserOut        `json:"user"`
	Table      *TableOut      `json:"table"`
	Status     string         `json:"status"`
	Items      []OrderItemOut `json:"items"`
	Name       string         `json:"name"`
	TotalPrice float64        `json:"total_price"`
	CreatedAt  time.Time      `json:"created_at"`
}

func SerializeUser(u *entity.User) UserOut {
	return UserOut{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	}
}

func SerializeUsers(users []entity.User) []UserOut {
	out := make([]UserOut, 0, len(users))
	for i := range users {
		out = append(out, SerializeUser(&users[i]))
	}
	return out
}

func SerializeTable(t *entity.Table) TableOut {
	return TableOut{ID: t.ID, Number: t.Number, Seats: t.Seats, Status: t.Status, Note: t.Note}
}

func SerializeTables(tables []entity.Table) []TableOut {
	out := make([]TableOut, 0, len(tables))
	for i := range tables {
		out = append(out, SerializeTable(&tables[i]))
	}
	return out
}

func SerializeItem(it *entity.Item) ItemOut {
	return ItemOut{ID: it.ID, Name: it.Name, Description: it.Description, Price: it.Price, Available: it.Available}
}

func SerializeItems(items []entity.Item) []ItemOut {
	out := make([]ItemOut, 0, len(items))
	for i := range items {
		out = append(out, SerializeItem(&items[i]))
	}
	return out
}

// SerializeOrder recomputes total_price from the item rows; the stored
// order never carries a total of its own.
func SerializeOrder(o *entity.Order) OrderOut {
	items := make([]OrderItemOut, 0, len(o.Items))
	var total float64
	for i := range o.Items {
		oi := &o.Items[i]
		items = append(items, OrderItemOut{
			ID:       oi.ID,
			Item:     SerializeItem(&oi.Item),
			Quantity: oi.Quantity,
		})
		total += oi.Item.Price * float64(oi.Quantity)
	}

	var table *TableOut
	if o.Table != nil {
		t := SerializeTable(o.Table)
		table = &t
	}

	return OrderOut{
		ID:         o.ID,
		User:       SerializeUser(&o.User),
		Table:      table,
		Status:     o.Status,
		Items:      items,
		Name:       o.Name,
		TotalPrice: math.Round(total*100) / 100,
		CreatedAt:  o.CreatedAt,
	}
}

func SerializeOrders(orders []entity.Order) []OrderOut {
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, SerializeOrder(&orders[i]))
	}
	return out
}
