package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"
)

type ClassifyHandler struct {
	Classify *services.ClassifyService
}

type classificationRequest struct {
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	Category    string `json:"category"`
}

func (h *ClassifyHandler) Create(c *fiber.Ctx) error {
	var req classificationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	itemName, ok := validate.Required(req.ItemName)
	if !ok {
		return badRequest(c, "item_name is required")
	}
	condition, ok := validate.Required(req.Condition)
	if !ok {
		return badRequest(c, "condition is required")
	}
	category, ok := validate.Required(req.Category)
	if !ok {
		return badRequest(c, "category is required")
	}

	u := currentUser(c)
	created, err := h.Classify.Create(u.ID, services.ClassificationInput{
		ItemName:    itemName,
		Description: req.Description,
		Condition:   condition,
		Category:    category,
	})
	if err != nil {
		return fail(c, "classify.create.fail", err)
	}
	applog.Audit(c, "classify.create", map[string]any{"classification_id": created.ID})
	return c.JSON(created)
}

func (h *ClassifyHandler) List(c *fiber.Ctx) error {
	u := currentUser(c)
	items, err := h.Classify.List(u.ID)
	if err != nil {
		return fail(c, "classify.list.fail", err)
	}
	if items == nil {
		items = []domain.Classification{}
	}
	return c.JSON(items)
}

func (h *ClassifyHandler) UploadImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "invalid classification id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, "classify.upload.fail", err)
	}
	defer f.Close()

	u := currentUser(c)
	path, err := h.Classify.AttachImage(u.ID, int64(id), fh.Filename, f)
	if err != nil {
		return fail(c, "classify.upload.fail", err)
	}
	applog.Audit(c, "classify.upload", map[string]any{"classification_id": id, "path": path})
	return c.JSON(fiber.Map{"message": "image uploaded", "path": path})
}
