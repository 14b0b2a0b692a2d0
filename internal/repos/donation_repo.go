package repos

import (
	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type DonationRepo struct{ db *sqlx.DB }

func NewDonationRepo(db *sqlx.DB) *DonationRepo { return &DonationRepo{db: db} }

const donationCols = `id,user_id,classification_id,location,status,created_at`

func (r *DonationRepo) Create(d *domain.Donation) error {
	res, err := r.db.Exec(`
		INSERT INTO donations(user_id,classification_id,location)
		VALUES(?,?,?)`,
		d.UserID, d.ClassificationID, d.Location)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = id
	return r.db.Get(d, `SELECT `+donationCols+` FROM donations WHERE id=?`, id)
}

func (r *DonationRepo) ListByUser(userID int64) ([]domain.Donation, error) {
	var out []domain.Donation
	err := r.db.Select(&out, `SELECT `+donationCols+` FROM donations WHERE user_id=?`, userID)
	return out, err
}
