package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"
)

type DonateHandler struct {
	Donate *services.DonateService
}

type donationRequest struct {
	ClassificationID int64  `json:"classification_id"`
	Location         string `json:"location"`
}

func (h *DonateHandler) Register(c *fiber.Ctx) error {
	var req donationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ClassificationID < 1 {
		return badRequest(c, "classification_id is required")
	}
	location, ok := validate.Required(req.Location)
	if !ok {
		return badRequest(c, "location is required")
	}

	u := currentUser(c)
	d, err := h.Donate.Register(u.ID, req.ClassificationID, location)
	if err != nil {
		return fail(c, "donate.register.fail", err)
	}
	applog.Audit(c, "donate.register", map[string]any{"donation_id": d.ID})
	return c.JSON(d)
}

func (h *DonateHandler) List(c *fiber.Ctx) error {
	u := currentUser(c)
	out, err := h.Donate.List(u.ID)
	if err != nil {
		return fail(c, "donate.list.fail", err)
	}
	if out == nil {
		out = []domain.Donation{}
	}
	return c.JSON(out)
}

func (h *DonateHandler) Organizations(c *fiber.Ctx) error {
	return c.JSON(h.Donate.Organizations())
}
