package services

import (
	"fmt"
	"time"

	"ecycle/internal/domain"
)

const taxRate = 0.08

// ReceiptItem is the display data a receipt needs, resolved from either the
// static catalog or a persisted listing.
type ReceiptItem struct {
	Title        string
	Brand        string
	Model        string
	SellerName   string
	WarrantyInfo string
}

// The layout is fixed-width and must stay byte-for-byte stable: clients diff
// downloaded receipts against stored copies.
const receiptTemplate = `
===============================================
            E-CYCLE MARKETPLACE
               Purchase Receipt
===============================================

Order ID: ECY%06d
Date: %s
Customer: %s
Email: %s
Phone: %s

-----------------------------------------------
                ITEM DETAILS
-----------------------------------------------
Product: %s
Brand: %s
Model: %s
Seller: %s
Warranty: %s

-----------------------------------------------
              PAYMENT SUMMARY
-----------------------------------------------
Item Price:        $%.2f
Tax (8%%):          $%.2f
Shipping:          FREE
                   --------
Total Paid:        $%.2f

-----------------------------------------------
             SHIPPING ADDRESS
-----------------------------------------------
%s

===============================================
        Thank you for your purchase!
    For support, contact: support@ecycle.com
===============================================
`

func RenderReceipt(p *domain.Purchase, item ReceiptItem, u *domain.User) string {
	subtotal := p.PurchasePrice
	tax := subtotal * taxRate
	total := subtotal + tax

	return fmt.Sprintf(receiptTemplate,
		p.ID,
		receiptDate(p.CreatedAt),
		u.DisplayName(),
		u.Email,
		p.PhoneNumber,
		item.Title,
		item.Brand,
		item.Model,
		item.SellerName,
		item.WarrantyInfo,
		subtotal,
		tax,
		total,
		p.ShippingAddress,
	)
}

func ReceiptFilename(purchaseID int64) string {
	return fmt.Sprintf("ECycle_Receipt_%06d.txt", purchaseID)
}

// receiptDate formats the stored timestamp as "Month DD, YYYY at hh:mm AM/PM".
func receiptDate(createdAt string) string {
	t, err := time.Parse("2006-01-02 15:04:05", createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("January 02, 2006 at 03:04 PM")
}
