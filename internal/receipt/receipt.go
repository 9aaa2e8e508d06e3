package receipt

import (
	"fmt"
	"time"

	"salesdesk/internal/cart"
)

// Line is one receipt row; LineTotal is unitPrice*quantity at snapshot time.
type Line struct {
	Name      string
	UnitPrice float64
	Quantity  int
	LineTotal float64
}

// Receipt is an immutable snapshot of an order at finalization. It copies
// everything it needs out of the order's lines, so later cart mutations
// (including Clear) cannot reach a receipt that was already built.
type Receipt struct {
	InvoiceID  string
	IssuedAt   time.Time
	Cashier    string
	Lines      []Line
	GrandTotal float64
}

// Build materializes a receipt from an order's line copy. Pure: it never
// touches live order state. An empty order legally yields a zero-total
// receipt with no lines.
func Build(items []cart.LineItem, cashier string, now time.Time) Receipt {
	r := Receipt{
		InvoiceID: invoiceID(now),
		IssuedAt:  now,
		Cashier:   cashier,
		Lines:     make([]Line, 0, len(items)),
	}
	for _, li := range items {
		r.Lines = append(r.Lines, Line{
			Name:      li.Name,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			LineTotal: li.Subtotal(),
		})
		r.GrandTotal += li.Subtotal()
	}
	return r
}

// invoiceID is the last six digits of the millisecond timestamp, prefixed
// INV-. Deliberately weak: unique enough per register session, human-sized
// on a paper slip. Not a cross-register uniqueness guarantee.
func invoiceID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "INV-" + ms
}
