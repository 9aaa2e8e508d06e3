package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salesdesk/internal/config"
)

// PageHandler serves the nav destinations that are plain pages today.
type PageHandler struct {
	Cfg config.Config
}

func (h *PageHandler) page(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, "page", fiber.Map{
			"StoreName": h.Cfg.StoreName,
			"Cashier":   h.Cfg.Cashier,
			"Title":     title,
		})
	}
}

func (h *PageHandler) Home(c *fiber.Ctx) error      { return h.page("Home")(c) }
func (h *PageHandler) Products(c *fiber.Ctx) error  { return h.page("Product Management")(c) }
func (h *PageHandler) Customers(c *fiber.Ctx) error { return h.page("Customer Management")(c) }
func (h *PageHandler) Settings(c *fiber.Ctx) error  { return h.page("Settings")(c) }
