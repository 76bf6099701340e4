package client

import (
	"context"
	"sort"
)

// Stats are the dashboard counters, derived fresh from the fetched
// collections on every build.
type Stats struct {
	FreeTables     int
	InPlaceOrders  int
	DeliveryOrders int
	ActiveOrders   int
}

// Dashboard is a read-only projection over tables, orders and users. It
// never mutates anything and is recomputed rather than cached.
type Dashboard struct {
	Stats Stats

	// latest first; stable sort keeps ties deterministic
	InPlace  []Order
	Delivery []Order
	Users    []User
}

func BuildDashboard(tables []Table, orders []Order, users []User) *Dashboard {
	d := &Dashboard{Users: users}

	for _, t := range tables {
		if t.Available() {
			d.Stats.FreeTables++
		}
	}

	for _, o := range orders {
		if o.InPlace() {
			d.InPlace = append(d.InPlace, o)
		} else {
			d.Delivery = append(d.Delivery, o)
		}
	}
	d.Stats.InPlaceOrders = len(d.InPlace)
	d.Stats.DeliveryOrders = len(d.Delivery)
	d.Stats.ActiveOrders = len(orders)

	latestFirst(d.InPlace)
	latestFirst(d.Delivery)
	return d
}

func latestFirst(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// LoadDashboard fetches the three collections and builds the projection,
// gated on privilege. Anything short of a confirmed superuser match —
// unresolved identity, a failed directory fetch, a plain user — yields
// ErrAccessDenied and no content.
func LoadDashboard(ctx context.Context, gw Gateway, sess *Session) (*Dashboard, error) {
	if sess == nil || sess.Username == "" {
		return nil, ErrAccessDenied
	}

	users, err := gw.Users(ctx)
	if err != nil {
		return nil, ErrAccessDenied
	}
	if !sess.PrivilegedIn(users) {
		return nil, ErrAccessDenied
	}

	tables, err := gw.Tables(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := gw.Orders(ctx)
	if err != nil {
		return nil, err
	}

	return BuildDashboard(tables, orders, users), nil
}
