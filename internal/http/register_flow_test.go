package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"salesdesk/internal/cart"
	"salesdesk/internal/catalog"
	"salesdesk/internal/config"
	"salesdesk/internal/http/handlers"
)

// newTestApp wires the register routes against the seeded in-memory catalog.
// CSRF and rate limiting are exercised separately; here we test the flow.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := catalog.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	cat, err := catalog.NewService(db)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{StoreName: "Test Shop", Cashier: "Tester"}
	deps := handlers.NewDeps(cat, cart.NewStore(), cfg)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	app.Get("/sales", deps.SalesHandler.Page)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/delete", deps.CartHandler.Remove)
	app.Get("/receipt", deps.ReceiptHandler.Show)
	app.Post("/checkout", deps.ReceiptHandler.Finalize)
	return app
}

type client struct {
	t   *testing.T
	app *fiber.App
	sid string
}

func (cl *client) do(method, path string, form url.Values) (*http.Response, string) {
	cl.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cl.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: cl.sid})
	}
	resp, err := cl.app.Test(req)
	if err != nil {
		cl.t.Fatalf("%s %s: %v", method, path, err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			cl.sid = c.Value
		}
	}
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func (cl *client) add(productID string) {
	cl.t.Helper()
	resp, _ := cl.do("POST", "/cart", url.Values{"productId": {productID}})
	if resp.StatusCode != fiber.StatusFound {
		cl.t.Fatalf("add %s: want 302, got %d", productID, resp.StatusCode)
	}
}

// Seeded catalog: id 1 = Chang Beer 50.00, id 5 = Coke 35.00.
func TestRegisterFlow(t *testing.T) {
	cl := &client{t: t, app: newTestApp(t)}

	cl.add("1")
	cl.add("5")
	cl.add("5")

	_, body := cl.do("GET", "/sales", nil)
	if !strings.Contains(body, "120.00") {
		t.Fatalf("sales page missing total 120.00:\n%s", body)
	}
	if !strings.Contains(body, "Chang Beer") || !strings.Contains(body, "Coke") {
		t.Fatal("sales page missing cart lines")
	}

	// Driving Coke to -3 is rejected; total stays put.
	resp, _ := cl.do("POST", "/cart/update", url.Values{"productId": {"5"}, "delta": {"-5"}})
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("update: want 302, got %d", resp.StatusCode)
	}
	_, body = cl.do("GET", "/sales", nil)
	if !strings.Contains(body, "120.00") {
		t.Fatal("rejected decrement changed the total")
	}

	// Remove the beer; only Coke x2 remains.
	cl.do("POST", "/cart/delete", url.Values{"productId": {"1"}})
	_, body = cl.do("GET", "/sales", nil)
	if !strings.Contains(body, "฿70.00</strong>") {
		t.Fatal("total after remove should be 70.00")
	}

	// Finalize: receipt shows the snapshot, then the register is empty.
	_, body = cl.do("POST", "/checkout", nil)
	if !strings.Contains(body, "INV-") || !strings.Contains(body, "70.00") {
		t.Fatalf("receipt missing invoice/total:\n%s", body)
	}
	_, body = cl.do("GET", "/sales", nil)
	if !strings.Contains(body, "0.00") || !strings.Contains(body, "No items yet") {
		t.Fatal("order not reset after finalize")
	}
}

func TestReceiptPreview_DoesNotMutate(t *testing.T) {
	cl := &client{t: t, app: newTestApp(t)}
	cl.add("1")

	_, body := cl.do("GET", "/receipt", nil)
	if !strings.Contains(body, "50.00") {
		t.Fatal("preview missing line total")
	}

	// Preview must leave the order alone.
	_, body = cl.do("GET", "/sales", nil)
	if !strings.Contains(body, "50.00 × 1") || strings.Contains(body, "No items yet") {
		t.Fatal("receipt preview mutated the order")
	}
}

func TestReceipt_EmptyOrderIsLegal(t *testing.T) {
	cl := &client{t: t, app: newTestApp(t)}
	resp, body := cl.do("GET", "/receipt", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("empty receipt should be 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "0.00") {
		t.Fatal("empty receipt should show a zero grand total")
	}
}

func TestCartAdd_UnknownProductNoops(t *testing.T) {
	cl := &client{t: t, app: newTestApp(t)}
	resp, _ := cl.do("POST", "/cart", url.Values{"productId": {"999"}})
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("unknown product should still redirect, got %d", resp.StatusCode)
	}
	_, body := cl.do("GET", "/sales", nil)
	if !strings.Contains(body, "No items yet") {
		t.Fatal("unknown product reached the order")
	}
}

func TestCartAdd_MissingProductIDIs400(t *testing.T) {
	cl := &client{t: t, app: newTestApp(t)}
	resp, _ := cl.do("POST", "/cart", url.Values{})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestSalesPage_CategoryFilterIsDisplayOnly(t *testing.T) {
	cl := &client{t: t, app: newTestApp(t)}
	cl.add("6") // French Fries (Food)

	// Filtering to Drinks hides the fries from the grid but not the cart.
	_, body := cl.do("GET", "/sales?category=Drinks", nil)
	if !strings.Contains(body, "50.00 × 1") {
		t.Fatal("cart should survive a category switch")
	}
	if !strings.Contains(body, "Chang Beer") {
		t.Fatal("Drinks filter should show drinks")
	}
}
