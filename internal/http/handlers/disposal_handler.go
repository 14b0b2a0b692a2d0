package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"
)

type DisposalHandler struct {
	Disposal *services.DisposalService
}

type disposalRequest struct {
	ClassificationID int64   `json:"classification_id"`
	DisposalMethod   string  `json:"disposal_method"`
	PickupDate       *string `json:"pickup_date"`
	PickupLocation   *string `json:"pickup_location"`
	VendorFilter     string  `json:"vendor_filter"`
	SelectedVendor   *string `json:"selected_vendor"`
}

func (h *DisposalHandler) Schedule(c *fiber.Ctx) error {
	var req disposalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ClassificationID < 1 {
		return badRequest(c, "classification_id is required")
	}
	method, ok := validate.Required(req.DisposalMethod)
	if !ok {
		return badRequest(c, "disposal_method is required")
	}

	u := currentUser(c)
	d, err := h.Disposal.Schedule(u.ID, services.DisposalInput{
		ClassificationID: req.ClassificationID,
		DisposalMethod:   method,
		PickupDate:       req.PickupDate,
		PickupLocation:   req.PickupLocation,
		VendorFilter:     req.VendorFilter,
		SelectedVendor:   req.SelectedVendor,
	})
	if err != nil {
		return fail(c, "disposal.schedule.fail", err)
	}
	applog.Audit(c, "disposal.schedule", map[string]any{"disposal_id": d.ID})
	return c.JSON(d)
}

func (h *DisposalHandler) List(c *fiber.Ctx) error {
	u := currentUser(c)
	out, err := h.Disposal.List(u.ID)
	if err != nil {
		return fail(c, "disposal.list.fail", err)
	}
	if out == nil {
		out = []domain.Disposal{}
	}
	return c.JSON(out)
}

func (h *DisposalHandler) Vendors(c *fiber.Ctx) error {
	return c.JSON(h.Disposal.Vendors(c.Query("vendor_type")))
}
