package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salesdesk/internal/cart"
	"salesdesk/internal/catalog"
	applog "salesdesk/internal/log"
	"salesdesk/internal/validate"
)

// CartHandler covers the three order mutations. Unknown product ids inside
// the order are silent no-ops (stale buttons, double clicks); only a
// missing/garbled form value is a client error.
type CartHandler struct {
	Catalog *catalog.Service
	Carts   *cart.Store
}

func backToSales(c *fiber.Ctx) error {
	if cat, ok := validate.Category(c.FormValue("category")); ok && cat != "all" {
		return c.Redirect("/sales?category=" + cat)
	}
	return c.Redirect("/sales")
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, found := h.Catalog.Get(id)
	if !found {
		// Not in the catalog at all; nothing to add.
		applog.Info(c, "cart.add.unknown", map[string]any{"product_id": id})
		return backToSales(c)
	}
	cv := h.Carts.Add(sid, p)
	applog.Info(c, "cart.add", map[string]any{"product_id": id, "total": cv.Total})
	return backToSales(c)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	delta, ok := validate.Delta(c.FormValue("delta"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "delta"})
		return c.Status(fiber.StatusBadRequest).SendString("missing delta")
	}
	cv := h.Carts.UpdateQuantity(sid, id, delta)
	applog.Info(c, "cart.update", map[string]any{"product_id": id, "delta": delta, "total": cv.Total})
	return backToSales(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	cv := h.Carts.Remove(sid, id)
	applog.Info(c, "cart.remove", map[string]any{"product_id": id, "total": cv.Total})
	return backToSales(c)
}
