package receipt_test

import (
	"regexp"
	"testing"
	"time"

	"salesdesk/internal/cart"
	"salesdesk/internal/domain"
	"salesdesk/internal/receipt"
)

func order(t *testing.T) *cart.Order {
	t.Helper()
	o := cart.NewOrder()
	o.AddItem(domain.Product{ID: 1, Name: "Chang Beer", Price: 50, Category: "Drinks"})
	o.AddItem(domain.Product{ID: 5, Name: "Coke", Price: 35, Category: "Drinks"})
	o.AddItem(domain.Product{ID: 5, Name: "Coke", Price: 35, Category: "Drinks"})
	return o
}

func TestBuild(t *testing.T) {
	o := order(t)
	now := time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)

	r := receipt.Build(o.Items(), "GAPPA GUITARROCK", now)

	if r.Cashier != "GAPPA GUITARROCK" {
		t.Fatalf("cashier wrong: %q", r.Cashier)
	}
	if !r.IssuedAt.Equal(now) {
		t.Fatalf("issuedAt wrong: %v", r.IssuedAt)
	}
	if len(r.Lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(r.Lines))
	}
	if r.Lines[0].Name != "Chang Beer" || r.Lines[0].LineTotal != 50 {
		t.Fatalf("line 0 wrong: %+v", r.Lines[0])
	}
	if r.Lines[1].Quantity != 2 || r.Lines[1].LineTotal != 70 {
		t.Fatalf("line 1 wrong: %+v", r.Lines[1])
	}
	if r.GrandTotal != 120 {
		t.Fatalf("want grand total 120, got %v", r.GrandTotal)
	}
	if r.GrandTotal != o.Total() {
		t.Fatalf("grand total %v != order total %v", r.GrandTotal, o.Total())
	}
}

func TestBuild_InvoiceIDFormat(t *testing.T) {
	r := receipt.Build(nil, "x", time.Now())
	if ok, _ := regexp.MatchString(`^INV-\d{6}$`, r.InvoiceID); !ok {
		t.Fatalf("invoice id format wrong: %q", r.InvoiceID)
	}
}

func TestBuild_SnapshotIsolation(t *testing.T) {
	o := order(t)
	r := receipt.Build(o.Items(), "x", time.Now())

	o.Clear()
	o.AddItem(domain.Product{ID: 9, Name: "Fried Chicken Knuckles", Price: 45})

	if len(r.Lines) != 2 || r.GrandTotal != 120 {
		t.Fatalf("receipt changed after cart mutation: %+v", r)
	}
}

func TestBuild_EmptyOrder(t *testing.T) {
	o := cart.NewOrder()
	r := receipt.Build(o.Items(), "x", time.Now())
	if len(r.Lines) != 0 {
		t.Fatalf("want no lines, got %d", len(r.Lines))
	}
	if r.GrandTotal != 0 {
		t.Fatalf("want zero total, got %v", r.GrandTotal)
	}
}
