package client

import (
	"context"
	"errors"
	"testing"
	"time"
)

func dashboardFixture() *fakeGateway {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	five := Table{ID: 5, Number: "5", Status: TableOccupied}
	return &fakeGateway{
		tables: []Table{
			{ID: 1, Number: "1", Status: TableAvailable},
			{ID: 2, Number: "2", Status: TableAvailable},
			five,
		},
		orders: []Order{
			{ID: 1, Table: &five, Status: OrderPending, CreatedAt: base},
			{ID: 2, Status: OrderPending, CreatedAt: base.Add(time.Minute)},
			{ID: 3, Table: &five, Status: OrderCompleted, CreatedAt: base.Add(2 * time.Minute)},
			{ID: 4, Status: OrderCompleted, CreatedAt: base.Add(3 * time.Minute)},
		},
		users: []User{
			{ID: 1, Username: "a", IsSuperuser: true},
			{ID: 2, Username: "b"},
		},
	}
}

func TestBuildDashboardStats(t *testing.T) {
	gw := dashboardFixture()
	d := BuildDashboard(gw.tables, gw.orders, gw.users)

	if d.Stats.FreeTables != 2 {
		t.Errorf("free tables = %d, want 2", d.Stats.FreeTables)
	}
	if d.Stats.InPlaceOrders != 2 {
		t.Errorf("in-place = %d, want 2", d.Stats.InPlaceOrders)
	}
	if d.Stats.DeliveryOrders != 2 {
		t.Errorf("delivery = %d, want 2", d.Stats.DeliveryOrders)
	}
	// active counts every held order regardless of status
	if d.Stats.ActiveOrders != 4 {
		t.Errorf("active = %d, want 4", d.Stats.ActiveOrders)
	}
}

func TestBuildDashboardLatestFirst(t *testing.T) {
	gw := dashboardFixture()
	d := BuildDashboard(gw.tables, gw.orders, gw.users)

	if len(d.InPlace) != 2 || d.InPlace[0].ID != 3 || d.InPlace[1].ID != 1 {
		t.Errorf("in-place order = %v, want [3 1]", orderIDs(d.InPlace))
	}
	if len(d.Delivery) != 2 || d.Delivery[0].ID != 4 || d.Delivery[1].ID != 2 {
		t.Errorf("delivery order = %v, want [4 2]", orderIDs(d.Delivery))
	}
}

func orderIDs(orders []Order) []int {
	out := make([]int, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestLoadDashboardGate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		usersErr error
		want     bool
	}{
		{name: "superuser sees content", username: "a", want: true},
		{name: "plain user denied", username: "b"},
		{name: "unknown user denied", username: "z"},
		{name: "unresolved identity denied", username: ""},
		{name: "directory fetch failure denied", username: "a", usersErr: errGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := dashboardFixture()
			gw.usersErr = tt.usersErr
			sess := &Session{Username: tt.username}

			d, err := LoadDashboard(context.Background(), gw, sess)
			if tt.want {
				if err != nil {
					t.Fatalf("want content, got %v", err)
				}
				if d == nil || d.Stats.ActiveOrders != 4 {
					t.Fatalf("dashboard = %+v", d)
				}
				return
			}
			if !errors.Is(err, ErrAccessDenied) {
				t.Fatalf("err = %v, want ErrAccessDenied", err)
			}
			if d != nil {
				t.Fatal("denied state must never carry content")
			}
		})
	}
}

func TestLoadDashboardNilSession(t *testing.T) {
	if _, err := LoadDashboard(context.Background(), dashboardFixture(), nil); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("err = %v, want ErrAccessDenied", err)
	}
}
