package repos

import (
	"database/sql"

	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MarketplaceRepo struct{ db *sqlx.DB }

func NewMarketplaceRepo(db *sqlx.DB) *MarketplaceRepo { return &MarketplaceRepo{db: db} }

const itemCols = `id,user_id,classification_id,title,brand,model,description,price,original_price,
  category_id,images_json,specs_json,warranty_info,seller_name,seller_rating,is_selling,status,created_at`

func (r *MarketplaceRepo) Create(m *domain.MarketplaceItem) error {
	res, err := r.db.Exec(`
		INSERT INTO marketplace_items
		  (user_id,classification_id,title,brand,model,description,price,original_price,
		   category_id,images_json,specs_json,warranty_info,seller_name,is_selling)
		VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		m.UserID, m.ClassificationID, m.Title, m.Brand, m.Model, m.Description, m.Price, m.OriginalPrice,
		m.CategoryID, m.ImagesJSON, m.SpecsJSON, m.WarrantyInfo, m.SellerName, m.IsSelling)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return r.db.Get(m, `SELECT `+itemCols+` FROM marketplace_items WHERE id=?`, id)
}

// ItemFilter narrows the available-items listing. Nil fields are not applied.
type ItemFilter struct {
	IsSelling  *bool
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
}

// ListAvailable returns rows with status 'available', further narrowed by the
// filter. Sold rows are never listed.
func (r *MarketplaceRepo) ListAvailable(f ItemFilter) ([]domain.MarketplaceItem, error) {
	where := `status = 'available'`
	args := []any{}
	if f.IsSelling != nil {
		where += ` AND is_selling = ?`
		args = append(args, *f.IsSelling)
	}
	if f.CategoryID != nil {
		where += ` AND category_id = ?`
		args = append(args, *f.CategoryID)
	}
	if f.MinPrice != nil {
		where += ` AND price >= ?`
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where += ` AND price <= ?`
		args = append(args, *f.MaxPrice)
	}

	var out []domain.MarketplaceItem
	err := r.db.Select(&out, `SELECT `+itemCols+` FROM marketplace_items WHERE `+where, args...)
	return out, err
}

func (r *MarketplaceRepo) ListByUser(userID int64) ([]domain.MarketplaceItem, error) {
	var out []domain.MarketplaceItem
	err := r.db.Select(&out, `SELECT `+itemCols+` FROM marketplace_items WHERE user_id=?`, userID)
	return out, err
}

// ByID returns the row regardless of status (receipts need sold items too).
func (r *MarketplaceRepo) ByID(id int64) (*domain.MarketplaceItem, error) {
	var m domain.MarketplaceItem
	if err := r.db.Get(&m, `SELECT `+itemCols+` FROM marketplace_items WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &m, nil
}

// AvailableByID returns the row only while it can still be bought.
func (r *MarketplaceRepo) AvailableByID(id int64) (*domain.MarketplaceItem, error) {
	var m domain.MarketplaceItem
	if err := r.db.Get(&m, `SELECT `+itemCols+` FROM marketplace_items WHERE id=? AND status='available'`, id); err != nil {
		return nil, err
	}
	return &m, nil
}

// Sell flips the item to 'sold' and records the purchase in one transaction.
// The conditional UPDATE is the race guard: if another buyer got there first,
// zero rows are affected and sql.ErrNoRows comes back with nothing written.
func (r *MarketplaceRepo) Sell(itemID int64, p *domain.Purchase) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE marketplace_items SET status='sold' WHERE id=? AND status='available'`, itemID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	if err := insertPurchase(tx, p); err != nil {
		return err
	}
	return tx.Commit()
}
