package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "ecycle/internal/log"
	"ecycle/internal/repos"
	"ecycle/internal/services"
	"ecycle/internal/validate"
)

type MarketplaceHandler struct {
	Marketplace *services.MarketplaceService
}

type marketplaceItemRequest struct {
	ClassificationID int64             `json:"classification_id"`
	Title            string            `json:"title"`
	Brand            string            `json:"brand"`
	Model            string            `json:"model"`
	Description      string            `json:"description"`
	Price            float64           `json:"price"`
	OriginalPrice    *float64          `json:"original_price"`
	CategoryID       int64             `json:"category_id"`
	Images           []string          `json:"images"`
	Specifications   map[string]string `json:"specifications"`
	WarrantyInfo     *string           `json:"warranty_info"`
	IsSelling        *bool             `json:"is_selling"`
}

type purchaseRequest struct {
	MarketplaceItemID int64  `json:"marketplace_item_id"`
	ShippingAddress   string `json:"shipping_address"`
	PhoneNumber       string `json:"phone_number"`
	PaymentMethod     string `json:"payment_method"`
	// Card fields are accepted for wire compatibility but never stored.
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
}

func (h *MarketplaceHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Marketplace.ListCategories()
	if err != nil {
		return fail(c, "marketplace.categories.fail", err)
	}
	return c.JSON(cats)
}

func (h *MarketplaceHandler) Create(c *fiber.Ctx) error {
	var req marketplaceItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ClassificationID < 1 {
		return badRequest(c, "classification_id is required")
	}
	title, ok := validate.Required(req.Title)
	if !ok {
		return badRequest(c, "title is required")
	}
	if req.Price < 0 {
		return badRequest(c, "price must not be negative")
	}

	isSelling := true
	if req.IsSelling != nil {
		isSelling = *req.IsSelling
	}

	u := currentUser(c)
	item, err := h.Marketplace.CreateItem(u, services.ItemInput{
		ClassificationID: req.ClassificationID,
		Title:            title,
		Brand:            req.Brand,
		Model:            req.Model,
		Description:      req.Description,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		CategoryID:       req.CategoryID,
		Images:           req.Images,
		Specifications:   req.Specifications,
		WarrantyInfo:     req.WarrantyInfo,
		IsSelling:        isSelling,
	})
	if err != nil {
		return fail(c, "marketplace.create.fail", err)
	}
	applog.Audit(c, "marketplace.create", map[string]any{"item_id": item.ID})
	return c.JSON(item)
}

func (h *MarketplaceHandler) List(c *fiber.Ctx) error {
	filter, err := parseItemFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	items, err := h.Marketplace.List(filter)
	if err != nil {
		return fail(c, "marketplace.list.fail", err)
	}
	return c.JSON(items)
}

func (h *MarketplaceHandler) MyItems(c *fiber.Ctx) error {
	u := currentUser(c)
	items, err := h.Marketplace.MyItems(u.ID)
	if err != nil {
		return fail(c, "marketplace.myitems.fail", err)
	}
	return c.JSON(items)
}

func (h *MarketplaceHandler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.MarketplaceItemID < 1 {
		return badRequest(c, "marketplace_item_id is required")
	}
	address, ok := validate.Required(req.ShippingAddress)
	if !ok {
		return badRequest(c, "shipping_address is required")
	}
	phone, ok := validate.Required(req.PhoneNumber)
	if !ok {
		return badRequest(c, "phone_number is required")
	}
	payment, ok := validate.Required(req.PaymentMethod)
	if !ok {
		return badRequest(c, "payment_method is required")
	}

	u := currentUser(c)
	p, err := h.Marketplace.Purchase(u, services.PurchaseInput{
		MarketplaceItemID: req.MarketplaceItemID,
		ShippingAddress:   address,
		PhoneNumber:       phone,
		PaymentMethod:     payment,
	})
	if err != nil {
		return fail(c, "marketplace.purchase.fail", err)
	}
	applog.Audit(c, "marketplace.purchase", map[string]any{
		"purchase_id": p.ID,
		"item_id":     p.MarketplaceItemID,
		"price":       p.PurchasePrice,
	})
	return c.JSON(p)
}

func (h *MarketplaceHandler) Receipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("purchase_id")
	if err != nil || id < 1 {
		return badRequest(c, "invalid purchase id")
	}

	u := currentUser(c)
	text, filename, err := h.Marketplace.Receipt(u, int64(id))
	if err != nil {
		return fail(c, "marketplace.receipt.fail", err)
	}
	applog.Audit(c, "marketplace.receipt", map[string]any{"purchase_id": id})

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.SendString(text)
}

func parseItemFilter(c *fiber.Ctx) (repos.ItemFilter, error) {
	var f repos.ItemFilter
	if v := c.Query("is_selling"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, errBadQuery("is_selling")
		}
		f.IsSelling = &b
	}
	if v := c.Query("category_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, errBadQuery("category_id")
		}
		f.CategoryID = &n
	}
	if v := c.Query("min_price"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errBadQuery("min_price")
		}
		f.MinPrice = &x
	}
	if v := c.Query("max_price"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errBadQuery("max_price")
		}
		f.MaxPrice = &x
	}
	return f, nil
}

type queryErr string

func (e queryErr) Error() string { return "invalid " + string(e) + " parameter" }

func errBadQuery(name string) error { return queryErr(name) }
