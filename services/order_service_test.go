package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// a throwaway file per test; :memory: hands every pooled connection its
// own database
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func testService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	if err := db.AutoMigrate(&entity.User{}, &entity.Table{}, &entity.Item{}, &entity.Order{}, &entity.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db.Create(&entity.User{Username: "staff", Email: "staff@example.com", Password: "x"})
	db.Create(&entity.Table{Number: "5", Seats: 4, Status: entity.TableAvailable})
	db.Create(&entity.Item{Name: "Burger", Price: 250, Available: true})
	db.Create(&entity.Item{Name: "Fries", Price: 100, Available: true})

	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewItemRepository(db),
	)
	return svc, db
}

func tableStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var table entity.Table
	if err := db.First(&table, id).Error; err != nil {
		t.Fatalf("load table: %v", err)
	}
	return table.Status
}

func placeReq(tableID *uint) *PlaceOrderReq {
	return &PlaceOrderReq{
		TableID: tableID,
		Items: []OrderItemIn{
			{ItemID: 1, Quantity: 2}, // Burger x2
			{ItemID: 2, Quantity: 1}, // Fries x1
		},
	}
}

func TestPlaceOrderReservesTable(t *testing.T) {
	svc, db := testService(t)
	tableID := uint(1)

	out, err := svc.PlaceOrder(1, placeReq(&tableID))
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if out.Status != entity.OrderPending {
		t.Errorf("status = %q, want pending", out.Status)
	}
	if out.Table == nil || out.Table.Number != "5" {
		t.Errorf("table = %+v, want table 5 embedded", out.Table)
	}
	if out.TotalPrice != 600 {
		t.Errorf("total_price = %v, want 600 (250*2 + 100)", out.TotalPrice)
	}
	if got := tableStatus(t, db, tableID); got != entity.TableOccupied {
		t.Errorf("table status = %q, want occupied", got)
	}
}

func TestPlaceOrderTableRace(t *testing.T) {
	svc, db := testService(t)
	tableID := uint(1)

	if _, err := svc.PlaceOrder(1, placeReq(&tableID)); err != nil {
		t.Fatalf("first order: %v", err)
	}

	_, err := svc.PlaceOrder(1, placeReq(&tableID))
	if !errors.Is(err, ErrTableUnavailable) {
		t.Fatalf("second order err = %v, want ErrTableUnavailable", err)
	}

	// the losing attempt must leave nothing behind
	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	if orders != 1 {
		t.Errorf("orders = %d, want 1", orders)
	}
}

func TestPlaceOrderDelivery(t *testing.T) {
	svc, db := testService(t)

	out, err := svc.PlaceOrder(1, placeReq(nil))
	if err != nil {
		t.Fatalf("delivery order: %v", err)
	}
	if out.Table != nil {
		t.Errorf("delivery order carries table %+v", out.Table)
	}
	if got := tableStatus(t, db, 1); got != entity.TableAvailable {
		t.Errorf("table status = %q, delivery orders must not touch tables", got)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _ := testService(t)

	if _, err := svc.PlaceOrder(1, &PlaceOrderReq{}); !errors.Is(err, ErrEmptyOrder) {
		t.Errorf("empty items err = %v, want ErrEmptyOrder", err)
	}

	req := &PlaceOrderReq{Items: []OrderItemIn{{ItemID: 99, Quantity: 1}}}
	if _, err := svc.PlaceOrder(1, req); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown item err = %v, want ErrItemNotFound", err)
	}
}

func TestCheckoutReleasesTable(t *testing.T) {
	svc, db := testService(t)
	tableID := uint(1)
	placed, err := svc.PlaceOrder(1, placeReq(&tableID))
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.Checkout(placed.ID, 1, false, "John", "9999999999")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if out.Status != entity.OrderCompleted {
		t.Errorf("status = %q, want completed", out.Status)
	}
	if out.Name != "John" {
		t.Errorf("settlement name = %q, want John", out.Name)
	}
	if got := tableStatus(t, db, tableID); got != entity.TableAvailable {
		t.Errorf("table status = %q, want available after settlement", got)
	}
}

func TestCheckoutDoubleSettlement(t *testing.T) {
	svc, _ := testService(t)
	tableID := uint(1)
	placed, err := svc.PlaceOrder(1, placeReq(&tableID))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Checkout(placed.ID, 1, false, "John", "9999999999"); err != nil {
		t.Fatal(err)
	}
	_, err = svc.Checkout(placed.ID, 1, false, "Jane", "8888888888")
	if !errors.Is(err, ErrOrderNotPending) {
		t.Fatalf("second checkout err = %v, want ErrOrderNotPending", err)
	}

	// the losing settlement must not overwrite the winner's identity
	out, err := svc.List(1, false)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Name != "John" {
		t.Errorf("settlement name = %q, want John", out[0].Name)
	}
}

func TestCheckoutValidation(t *testing.T) {
	svc, _ := testService(t)
	placed, err := svc.PlaceOrder(1, placeReq(nil))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		orderID uint
		payer   string
		phone   string
		wantErr error
	}{
		{name: "missing name", orderID: placed.ID, payer: "", phone: "9", wantErr: ErrSettlementFields},
		{name: "missing phone", orderID: placed.ID, payer: "John", phone: " ", wantErr: ErrSettlementFields},
		{name: "unknown order", orderID: 999, payer: "John", phone: "9", wantErr: ErrOrderNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Checkout(tt.orderID, 1, false, tt.payer, tt.phone); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckoutScopedToOwner(t *testing.T) {
	svc, db := testService(t)
	db.Create(&entity.User{Username: "other", Password: "x"})

	placed, err := svc.PlaceOrder(1, placeReq(nil))
	if err != nil {
		t.Fatal(err)
	}

	// user 2 is not the placer and not a superuser
	if _, err := svc.Checkout(placed.ID, 2, false, "John", "9"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("foreign checkout err = %v, want ErrOrderNotFound", err)
	}
	// superuser settles anyone's order
	if _, err := svc.Checkout(placed.ID, 2, true, "John", "9"); err != nil {
		t.Errorf("superuser checkout err = %v", err)
	}
}

func TestListScoped(t *testing.T) {
	svc, db := testService(t)
	db.Create(&entity.User{Username: "other", Password: "x"})

	if _, err := svc.PlaceOrder(1, placeReq(nil)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PlaceOrder(2, placeReq(nil)); err != nil {
		t.Fatal(err)
	}

	mine, err := svc.List(1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Errorf("own list = %d orders, want 1", len(mine))
	}

	all, err := svc.List(1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("superuser list = %d orders, want 2", len(all))
	}
}
