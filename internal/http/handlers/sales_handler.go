package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salesdesk/internal/cart"
	"salesdesk/internal/catalog"
	"salesdesk/internal/config"
	applog "salesdesk/internal/log"
	"salesdesk/internal/validate"
)

// SalesHandler renders the register page: catalog grid on the left, the
// live order on the right. It only re-reads state; every mutation goes
// through CartHandler and redirects back here.
type SalesHandler struct {
	Catalog *catalog.Service
	Carts   *cart.Store
	Cfg     config.Config
}

func (h *SalesHandler) Page(c *fiber.Ctx) error {
	sid := ensureSID(c)

	category, ok := validate.Category(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		category = "all"
	}

	cv := h.Carts.Snapshot(sid)
	return render(c, "sales", fiber.Map{
		"StoreName":  h.Cfg.StoreName,
		"Cashier":    h.Cfg.Cashier,
		"Categories": h.Catalog.Categories(),
		"Selected":   category,
		"Products":   h.Catalog.List(category),
		"Cart":       cv,
	})
}
