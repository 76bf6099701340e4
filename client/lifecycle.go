package client

import (
	"context"
	"sort"
)

// Controller drives the order/table reservation lifecycle. It holds the
// cart, the currently selected table and the last-fetched snapshots of
// tables and orders. The snapshots are best-effort caches: the gateway is
// authoritative and another session may invalidate them at any moment, so
// every mutation here is optimistic and every rejection is a normal,
// retryable outcome.
//
// All methods are meant for a single session loop; the controller does no
// locking of its own.
type Controller struct {
	gw   Gateway
	cart *Cart

	tables  []Table
	orders  []Order
	items   []MenuItem
	tableID int // 0 = delivery order
}

func NewController(gw Gateway) *Controller {
	return &Controller{gw: gw, cart: NewCart()}
}

func (s *Controller) Cart() *Cart {
	return s.cart
}

// Refresh pulls the menu and table list. Called on entry and after every
// successful placement.
func (s *Controller) Refresh(ctx context.Context) error {
	items, err := s.gw.Items(ctx)
	if err != nil {
		return err
	}
	tables, err := s.gw.Tables(ctx)
	if err != nil {
		return err
	}
	s.items = items
	s.tables = tables
	return nil
}

// RefreshOrders pulls the order list so checkout state reflects this
// session's own writes immediately.
func (s *Controller) RefreshOrders(ctx context.Context) error {
	orders, err := s.gw.Orders(ctx)
	if err != nil {
		return err
	}
	s.orders = orders
	return nil
}

func (s *Controller) Menu() []MenuItem {
	return s.items
}

func (s *Controller) Orders() []Order {
	return s.orders
}

// AvailableTables filters the last snapshot down to selectable tables.
// This is presentation-side filtering only; the gateway re-checks at
// placement time and is the one that actually arbitrates races.
func (s *Controller) AvailableTables() []Table {
	out := make([]Table, 0, len(s.tables))
	for _, t := range s.tables {
		if t.Available() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// SelectTable picks a table for the next placement. The table must be in
// the set this session currently believes available.
func (s *Controller) SelectTable(tableID int) error {
	for _, t := range s.AvailableTables() {
		if t.ID == tableID {
			s.tableID = tableID
			return nil
		}
	}
	return ErrTableUnknown
}

// ClearTable switches the next placement to a delivery order.
func (s *Controller) ClearTable() {
	s.tableID = 0
}

func (s *Controller) SelectedTable() int {
	return s.tableID
}

// PlaceOrder submits the cart as a single atomic request. Item ids and
// quantities only — the server recomputes prices and the total.
//
// On success the cart and selection are cleared and the table list is
// refetched so a now-occupied table drops out of the selectable set. On
// any failure, including losing the table to a concurrent session, cart
// and selection are left untouched for retry.
func (s *Controller) PlaceOrder(ctx context.Context) (*Order, error) {
	if s.cart.Empty() {
		return nil, ErrCartEmpty
	}

	req := PlaceOrderRequest{}
	if s.tableID != 0 {
		if err := s.SelectTable(s.tableID); err != nil {
			return nil, err
		}
		id := s.tableID
		req.TableID = &id
	}
	for _, l := range s.cart.Lines() {
		req.Items = append(req.Items, PlaceOrderItem{ItemID: l.Item.ID, Quantity: l.Quantity})
	}

	order, err := s.gw.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	s.tableID = 0

	// Best effort: the placement already succeeded, a failed refetch just
	// leaves the stale list until the next poll.
	if tables, err := s.gw.Tables(ctx); err == nil {
		s.tables = tables
	}
	return order, nil
}

// Checkout settles a pending order. Settlement identity is captured here,
// not at placement; confirm gates the irreversible submission and aborts
// it without any network traffic when it declines.
//
// A "no longer pending" rejection from the gateway (double click, another
// session got there first) comes back as a conflict APIError; the order
// list is left as-is so the caller can refetch and retry elsewhere.
func (s *Controller) Checkout(ctx context.Context, orderID int, name, phone string, confirm func() bool) (*Order, error) {
	var target *Order
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			target = &s.orders[i]
			break
		}
	}
	if target == nil {
		return nil, ErrOrderUnknown
	}
	if target.Status != OrderPending {
		return nil, ErrOrderNotPending
	}
	if name == "" || phone == "" {
		return nil, ErrSettlementFields
	}
	if confirm == nil || !confirm() {
		return nil, ErrNotConfirmed
	}

	order, err := s.gw.Checkout(ctx, orderID, name, phone)
	if err != nil {
		return nil, err
	}

	// Read-your-writes: refetch so the completed status (and the freed
	// table) shows up now, not on the next poll.
	if orders, err := s.gw.Orders(ctx); err == nil {
		s.orders = orders
	}
	return order, nil
}
