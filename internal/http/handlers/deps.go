package handlers

import (
	"salesdesk/internal/cart"
	"salesdesk/internal/catalog"
	"salesdesk/internal/config"
)

type Deps struct {
	SalesHandler   *SalesHandler
	CartHandler    *CartHandler
	ReceiptHandler *ReceiptHandler
	PageHandler    *PageHandler
}

func NewDeps(cat *catalog.Service, carts *cart.Store, cfg config.Config) *Deps {
	return &Deps{
		SalesHandler:   &SalesHandler{Catalog: cat, Carts: carts, Cfg: cfg},
		CartHandler:    &CartHandler{Catalog: cat, Carts: carts},
		ReceiptHandler: &ReceiptHandler{Carts: carts, Cfg: cfg},
		PageHandler:    &PageHandler{Cfg: cfg},
	}
}
