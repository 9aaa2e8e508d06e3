package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"salesdesk/internal/cart"
	"salesdesk/internal/config"
	applog "salesdesk/internal/log"
	"salesdesk/internal/receipt"
)

// ReceiptHandler materializes receipt snapshots. Show previews the current
// order without touching it; Finalize builds the snapshot and then resets
// the order, so the rendered receipt is decoupled from whatever the
// register does next.
type ReceiptHandler struct {
	Carts *cart.Store
	Cfg   config.Config
}

func (h *ReceiptHandler) Show(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv := h.Carts.Snapshot(sid)
	r := receipt.Build(cv.Items, h.Cfg.Cashier, time.Now())
	return render(c, "receipt", fiber.Map{
		"StoreName": h.Cfg.StoreName,
		"Receipt":   r,
		"Finalized": false,
	})
}

func (h *ReceiptHandler) Finalize(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv := h.Carts.Snapshot(sid)
	r := receipt.Build(cv.Items, h.Cfg.Cashier, time.Now())
	h.Carts.Reset(sid)
	applog.Audit(c, "receipt.finalize", map[string]any{
		"invoice_id":  r.InvoiceID,
		"lines":       len(r.Lines),
		"grand_total": r.GrandTotal,
	})
	return render(c, "receipt", fiber.Map{
		"StoreName": h.Cfg.StoreName,
		"Receipt":   r,
		"Finalized": true,
	})
}
