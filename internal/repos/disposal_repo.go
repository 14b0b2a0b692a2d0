package repos

import (
	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type DisposalRepo struct{ db *sqlx.DB }

func NewDisposalRepo(db *sqlx.DB) *DisposalRepo { return &DisposalRepo{db: db} }

const disposalCols = `id,user_id,classification_id,disposal_method,pickup_date,pickup_location,vendor_filter,selected_vendor,status,created_at`

func (r *DisposalRepo) Create(d *domain.Disposal) error {
	res, err := r.db.Exec(`
		INSERT INTO disposals(user_id,classification_id,disposal_method,pickup_date,pickup_location,vendor_filter,selected_vendor)
		VALUES(?,?,?,?,?,?,?)`,
		d.UserID, d.ClassificationID, d.DisposalMethod, d.PickupDate, d.PickupLocation, d.VendorFilter, d.SelectedVendor)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = id
	return r.db.Get(d, `SELECT `+disposalCols+` FROM disposals WHERE id=?`, id)
}

func (r *DisposalRepo) ListByUser(userID int64) ([]domain.Disposal, error) {
	var out []domain.Disposal
	err := r.db.Select(&out, `SELECT `+disposalCols+` FROM disposals WHERE user_id=?`, userID)
	return out, err
}
