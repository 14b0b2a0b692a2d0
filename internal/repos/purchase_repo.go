package repos

import (
	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PurchaseRepo struct{ db *sqlx.DB }

func NewPurchaseRepo(db *sqlx.DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

const purchaseCols = `id,user_id,marketplace_item_id,purchase_price,shipping_address,phone_number,payment_method,status,receipt_generated,created_at`

func insertPurchase(tx sqlx.Execer, p *domain.Purchase) error {
	res, err := tx.Exec(`
		INSERT INTO purchases(user_id,marketplace_item_id,purchase_price,shipping_address,phone_number,payment_method)
		VALUES(?,?,?,?,?,?)`,
		p.UserID, p.MarketplaceItemID, p.PurchasePrice, p.ShippingAddress, p.PhoneNumber, p.PaymentMethod)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Create records a purchase outside any item transaction. Used for static
// catalog items, which have no row to flip.
func (r *PurchaseRepo) Create(p *domain.Purchase) error {
	if err := insertPurchase(r.db, p); err != nil {
		return err
	}
	return r.db.Get(p, `SELECT `+purchaseCols+` FROM purchases WHERE id=?`, p.ID)
}

// Reload refreshes a purchase written inside a repo transaction.
func (r *PurchaseRepo) Reload(p *domain.Purchase) error {
	return r.db.Get(p, `SELECT `+purchaseCols+` FROM purchases WHERE id=?`, p.ID)
}

// ByIDAndUser enforces ownership: buyers see only their own purchases.
func (r *PurchaseRepo) ByIDAndUser(id, userID int64) (*domain.Purchase, error) {
	var p domain.Purchase
	if err := r.db.Get(&p, `SELECT `+purchaseCols+` FROM purchases WHERE id=? AND user_id=?`, id, userID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PurchaseRepo) MarkReceiptGenerated(id int64) error {
	_, err := r.db.Exec(`UPDATE purchases SET receipt_generated=1 WHERE id=?`, id)
	return err
}
