package domain

type Classification struct {
	ID          int64   `db:"id" json:"id"`
	UserID      int64   `db:"user_id" json:"user_id"`
	ItemName    string  `db:"item_name" json:"item_name"`
	Description string  `db:"description" json:"description"`
	Condition   string  `db:"condition" json:"condition"` // free text; "working" gates donations
	ImagePath   *string `db:"image_path" json:"image_path"`
	Category    string  `db:"category" json:"category"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

type Disposal struct {
	ID               int64   `db:"id" json:"id"`
	UserID           int64   `db:"user_id" json:"user_id"`
	ClassificationID int64   `db:"classification_id" json:"classification_id"`
	DisposalMethod   string  `db:"disposal_method" json:"disposal_method"`
	PickupDate       *string `db:"pickup_date" json:"pickup_date"`
	PickupLocation   *string `db:"pickup_location" json:"pickup_location"`
	VendorFilter     string  `db:"vendor_filter" json:"vendor_filter"`
	SelectedVendor   *string `db:"selected_vendor" json:"selected_vendor"`
	Status           string  `db:"status" json:"status"` // pending
	CreatedAt        string  `db:"created_at" json:"created_at"`
}

type Donation struct {
	ID               int64  `db:"id" json:"id"`
	UserID           int64  `db:"user_id" json:"user_id"`
	ClassificationID int64  `db:"classification_id" json:"classification_id"`
	Location         string `db:"location" json:"location"`
	Status           string `db:"status" json:"status"` // available
	CreatedAt        string `db:"created_at" json:"created_at"`
}

type ProductCategory struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Icon      string `db:"icon" json:"icon"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type MarketplaceItem struct {
	ID               int64    `db:"id" json:"id"`
	UserID           int64    `db:"user_id" json:"user_id"`
	ClassificationID int64    `db:"classification_id" json:"classification_id"`
	Title            string   `db:"title" json:"title"`
	Brand            string   `db:"brand" json:"brand"`
	Model            string   `db:"model" json:"model"`
	Description      string   `db:"description" json:"description"`
	Price            float64  `db:"price" json:"price"`
	OriginalPrice    *float64 `db:"original_price" json:"original_price"`
	CategoryID       int64    `db:"category_id" json:"category_id"`
	ImagesJSON       string   `db:"images_json" json:"images_json"`
	SpecsJSON        string   `db:"specs_json" json:"specs_json"`
	WarrantyInfo     *string  `db:"warranty_info" json:"warranty_info"`
	SellerName       string   `db:"seller_name" json:"seller_name"`
	SellerRating     float64  `db:"seller_rating" json:"seller_rating"`
	IsSelling        bool     `db:"is_selling" json:"is_selling"`
	Status           string   `db:"status" json:"status"` // available | sold
	CreatedAt        string   `db:"created_at" json:"created_at"`
}

type Purchase struct {
	ID                int64   `db:"id" json:"id"`
	UserID            int64   `db:"user_id" json:"user_id"`
	MarketplaceItemID int64   `db:"marketplace_item_id" json:"marketplace_item_id"`
	PurchasePrice     float64 `db:"purchase_price" json:"purchase_price"`
	ShippingAddress   string  `db:"shipping_address" json:"shipping_address"`
	PhoneNumber       string  `db:"phone_number" json:"phone_number"`
	PaymentMethod     string  `db:"payment_method" json:"payment_method"`
	Status            string  `db:"status" json:"status"` // completed
	ReceiptGenerated  bool    `db:"receipt_generated" json:"receipt_generated"`
	CreatedAt         string  `db:"created_at" json:"created_at"`
}
