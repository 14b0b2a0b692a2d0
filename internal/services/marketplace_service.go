package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ecycle/internal/catalog"
	"ecycle/internal/domain"
	"ecycle/internal/repos"
)

type MarketplaceService struct {
	Items           *repos.MarketplaceRepo
	Purchases       *repos.PurchaseRepo
	Categories      *repos.CategoryRepo
	Classifications *repos.ClassificationRepo
	Catalog         *catalog.Catalog
}

// ItemView is the wire form of a listing: structured fields deserialized from
// their stored text blobs.
type ItemView struct {
	ID               int64             `json:"id"`
	UserID           int64             `json:"user_id"`
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
	SellerName       string            `json:"seller_name"`
	SellerRating     float64           `json:"seller_rating"`
	IsSelling        bool              `json:"is_selling"`
	Status           string            `json:"status"`
	CreatedAt        string            `json:"created_at"`
}

type ItemInput struct {
	ClassificationID int64
	Title            string
	Brand            string
	Model            string
	Description      string
	Price            float64
	OriginalPrice    *float64
	CategoryID       int64
	Images           []string
	Specifications   map[string]string
	WarrantyInfo     *string
	IsSelling        bool
}

type PurchaseInput struct {
	MarketplaceItemID int64
	ShippingAddress   string
	PhoneNumber       string
	PaymentMethod     string
}

// ListCategories returns persisted categories, seeding the six defaults the
// first time the table is seen empty.
func (s *MarketplaceService) ListCategories() ([]domain.ProductCategory, error) {
	cats, err := s.Categories.List()
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		if err := s.Categories.SeedDefaults(s.Catalog.DefaultCategories); err != nil {
			return nil, err
		}
		cats, err = s.Categories.List()
		if err != nil {
			return nil, err
		}
	}
	return cats, nil
}

// CreateItem lists an owned classification for sale. Seller name falls back
// from full name to username.
func (s *MarketplaceService) CreateItem(u *domain.User, in ItemInput) (ItemView, error) {
	if _, err := s.Classifications.ByIDAndUser(in.ClassificationID, u.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ItemView{}, ErrClassificationNotFound
		}
		return ItemView{}, err
	}

	images, err := json.Marshal(in.Images)
	if err != nil {
		return ItemView{}, err
	}
	specs, err := json.Marshal(in.Specifications)
	if err != nil {
		return ItemView{}, err
	}

	m := &domain.MarketplaceItem{
		UserID:           u.ID,
		ClassificationID: in.ClassificationID,
		Title:            in.Title,
		Brand:            in.Brand,
		Model:            in.Model,
		Description:      in.Description,
		Price:            in.Price,
		OriginalPrice:    in.OriginalPrice,
		CategoryID:       in.CategoryID,
		ImagesJSON:       string(images),
		SpecsJSON:        string(specs),
		WarrantyInfo:     in.WarrantyInfo,
		SellerName:       u.DisplayName(),
		IsSelling:        in.IsSelling,
	}
	if err := s.Items.Create(m); err != nil {
		return ItemView{}, err
	}
	return itemView(m), nil
}

// List merges the fixed catalog with persisted available rows, static items
// first. Static items are always sell-side listings, so is_selling=false
// filters all of them out.
func (s *MarketplaceService) List(f repos.ItemFilter) ([]ItemView, error) {
	rows, err := s.Items.ListAvailable(f)
	if err != nil {
		return nil, err
	}

	out := make([]ItemView, 0, len(rows)+len(s.Catalog.Products))
	for _, p := range s.Catalog.Products {
		if f.IsSelling != nil && !*f.IsSelling {
			break
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, staticView(p))
	}
	for i := range rows {
		out = append(out, itemView(&rows[i]))
	}
	return out, nil
}

func (s *MarketplaceService) MyItems(userID int64) ([]ItemView, error) {
	rows, err := s.Items.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemView, 0, len(rows))
	for i := range rows {
		out = append(out, itemView(&rows[i]))
	}
	return out, nil
}

// Purchase buys an item for the given user. For persisted items the sold-flip
// and the purchase row commit together; a lost race surfaces as
// ErrItemUnavailable with nothing written. The self-purchase check does not
// apply to static catalog items, which have no real owner.
func (s *MarketplaceService) Purchase(buyer *domain.User, in PurchaseInput) (*domain.Purchase, error) {
	p := &domain.Purchase{
		UserID:            buyer.ID,
		MarketplaceItemID: in.MarketplaceItemID,
		ShippingAddress:   in.ShippingAddress,
		PhoneNumber:       in.PhoneNumber,
		PaymentMethod:     in.PaymentMethod,
	}

	if catalog.IsStaticID(in.MarketplaceItemID) {
		sp, ok := s.Catalog.Product(in.MarketplaceItemID)
		if !ok {
			return nil, ErrItemNotFound
		}
		p.PurchasePrice = sp.Price
		if err := s.Purchases.Create(p); err != nil {
			return nil, err
		}
		return p, nil
	}

	item, err := s.Items.AvailableByID(in.MarketplaceItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemUnavailable
		}
		return nil, err
	}
	if item.UserID == buyer.ID {
		return nil, ErrSelfPurchase
	}

	// Price is snapshotted here; later listing edits never touch the record.
	p.PurchasePrice = item.Price
	if err := s.Items.Sell(item.ID, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemUnavailable
		}
		return nil, err
	}
	if err := s.Purchases.Reload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Receipt renders the purchase receipt and marks it generated.
func (s *MarketplaceService) Receipt(u *domain.User, purchaseID int64) (string, string, error) {
	p, err := s.Purchases.ByIDAndUser(purchaseID, u.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrPurchaseNotFound
		}
		return "", "", err
	}

	var item ReceiptItem
	if catalog.IsStaticID(p.MarketplaceItemID) {
		sp, ok := s.Catalog.Product(p.MarketplaceItemID)
		if !ok {
			return "", "", ErrItemNotFound
		}
		item = ReceiptItem{Title: sp.Title, Brand: sp.Brand, Model: sp.Model, SellerName: sp.SellerName, WarrantyInfo: sp.WarrantyInfo}
	} else {
		m, err := s.Items.ByID(p.MarketplaceItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", "", ErrItemNotFound
			}
			return "", "", err
		}
		warranty := ""
		if m.WarrantyInfo != nil {
			warranty = *m.WarrantyInfo
		}
		item = ReceiptItem{Title: m.Title, Brand: m.Brand, Model: m.Model, SellerName: m.SellerName, WarrantyInfo: warranty}
	}

	text := RenderReceipt(p, item, u)
	if err := s.Purchases.MarkReceiptGenerated(p.ID); err != nil {
		return "", "", err
	}
	return text, ReceiptFilename(p.ID), nil
}

func itemView(m *domain.MarketplaceItem) ItemView {
	var images []string
	if err := json.Unmarshal([]byte(m.ImagesJSON), &images); err != nil || images == nil {
		images = []string{}
	}
	var specs map[string]string
	if err := json.Unmarshal([]byte(m.SpecsJSON), &specs); err != nil || specs == nil {
		specs = map[string]string{}
	}
	return ItemView{
		ID:               m.ID,
		UserID:           m.UserID,
		ClassificationID: m.ClassificationID,
		Title:            m.Title,
		Brand:            m.Brand,
		Model:            m.Model,
		Description:      m.Description,
		Price:            m.Price,
		OriginalPrice:    m.OriginalPrice,
		CategoryID:       m.CategoryID,
		Images:           images,
		Specifications:   specs,
		WarrantyInfo:     m.WarrantyInfo,
		SellerName:       m.SellerName,
		SellerRating:     m.SellerRating,
		IsSelling:        m.IsSelling,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
	}
}

func staticView(p catalog.Product) ItemView {
	warranty := p.WarrantyInfo
	return ItemView{
		ID:               p.ID,
		UserID:           1,
		ClassificationID: 1,
		Title:            p.Title,
		Brand:            p.Brand,
		Model:            p.Model,
		Description:      p.Description,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		CategoryID:       p.CategoryID,
		Images:           p.Images,
		Specifications:   p.Specifications,
		WarrantyInfo:     &warranty,
		SellerName:       p.SellerName,
		SellerRating:     p.SellerRating,
		IsSelling:        p.IsSelling,
		Status:           p.Status,
		CreatedAt:        time.Now().UTC().Format("2006-01-02 15:04:05"),
	}
}
