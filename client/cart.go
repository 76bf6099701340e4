package client

// CartLine is one (menu item, quantity) pair. The price inside Item is the
// one captured at add time; the server recomputes the real total at
// placement, so a stale price here only affects the running display.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

func (l CartLine) Subtotal() Money {
	return Money(float64(l.Item.Price) * float64(l.Quantity))
}

// Cart is the session-local, ephemeral item collection. It lives between
// "add to cart" and order placement, never touches the network, and is
// owned by exactly one session.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add inserts the item with quantity 1, or bumps the quantity if a line
// for it already exists.
func (c *Cart) Add(item MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// Remove deletes the line unconditionally; removing an absent id is a
// no-op.
func (c *Cart) Remove(itemID int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity changes a line's quantity by delta, clamped at 1. A line
// never disappears through decrements; only Remove deletes it.
func (c *Cart) AdjustQuantity(itemID, delta int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() Money {
	var total float64
	for _, l := range c.lines {
		total += float64(l.Item.Price) * float64(l.Quantity)
	}
	return Money(total)
}

// Lines returns a copy; callers cannot mutate the cart through it.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}
