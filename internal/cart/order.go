package cart

import "salesdesk/internal/domain"

// LineItem is one product entry in an order. Name, price and category are
// captured from the catalog at first add and kept as-is on repeat adds.
type LineItem struct {
	ProductID int
	Name      string
	UnitPrice float64
	Quantity  int
	Category  string
}

// Subtotal is the line's contribution to the order total, in full precision.
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Order is the working set of line items for one register session.
// At most one line per product id; lines keep first-add order. Quantity is
// always >= 1 — an update that would drop a line to zero or below is
// rejected, it never deletes the line (RemoveItem is the only removal path).
//
// Order does no locking of its own: the Store serializes access, and each
// operation runs to completion before the next one starts.
type Order struct {
	items []LineItem
}

func NewOrder() *Order { return &Order{} }

// AddItem appends a new line with quantity 1, or bumps the quantity of the
// existing line for the same product. Products with a zero id are ignored
// (catalog data is trusted; this is a precondition guard, not validation).
func (o *Order) AddItem(p domain.Product) {
	if p.ID == 0 {
		return
	}
	for i := range o.items {
		if o.items[i].ProductID == p.ID {
			o.items[i].Quantity++
			return
		}
	}
	o.items = append(o.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Category:  p.Category,
	})
}

// UpdateQuantity applies a signed delta to the line for productID.
// A delta that would leave the quantity at zero or below is a no-op; so is
// an unknown product id (stale button presses should not error).
func (o *Order) UpdateQuantity(productID, delta int) {
	for i := range o.items {
		if o.items[i].ProductID != productID {
			continue
		}
		if q := o.items[i].Quantity + delta; q > 0 {
			o.items[i].Quantity = q
		}
		return
	}
}

// RemoveItem deletes the line for productID in place; no-op if absent.
func (o *Order) RemoveItem(productID int) {
	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return
		}
	}
}

// Clear empties the order (checkout / session reset).
func (o *Order) Clear() { o.items = nil }

// Items returns a copy of the lines in first-add order. Callers render from
// the copy; mutating the order afterwards does not reach into it.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total sums unitPrice*quantity in full precision. Rounding to two decimals
// happens once, at the display/receipt boundary.
func (o *Order) Total() float64 {
	t := 0.0
	for _, li := range o.items {
		t += li.Subtotal()
	}
	return t
}

func (o *Order) Empty() bool { return len(o.items) == 0 }
