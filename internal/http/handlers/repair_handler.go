package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecycle/internal/catalog"
)

// RepairHandler serves the static repair directory; no auth, no state.
type RepairHandler struct {
	Catalog *catalog.Catalog
}

func (h *RepairHandler) Shops(c *fiber.Ctx) error {
	shops := h.Catalog.RepairShops[c.Query("repair_type")]
	if shops == nil {
		shops = []catalog.RepairShop{}
	}
	return c.JSON(shops)
}

func (h *RepairHandler) FAQ(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.FAQ)
}
