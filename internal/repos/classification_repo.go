package repos

import (
	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ClassificationRepo struct{ db *sqlx.DB }

func NewClassificationRepo(db *sqlx.DB) *ClassificationRepo { return &ClassificationRepo{db: db} }

const classificationCols = `id,user_id,item_name,description,condition,image_path,category,created_at`

func (r *ClassificationRepo) Create(c *domain.Classification) error {
	res, err := r.db.Exec(`
		INSERT INTO classifications(user_id,item_name,description,condition,category)
		VALUES(?,?,?,?,?)`,
		c.UserID, c.ItemName, c.Description, c.Condition, c.Category)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return r.db.Get(&c.CreatedAt, `SELECT created_at FROM classifications WHERE id=?`, id)
}

// ByIDAndUser enforces ownership: no row unless user_id matches.
func (r *ClassificationRepo) ByIDAndUser(id, userID int64) (*domain.Classification, error) {
	var c domain.Classification
	err := r.db.Get(&c, `SELECT `+classificationCols+` FROM classifications WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClassificationRepo) ListByUser(userID int64) ([]domain.Classification, error) {
	var out []domain.Classification
	err := r.db.Select(&out, `SELECT `+classificationCols+` FROM classifications WHERE user_id=?`, userID)
	return out, err
}

func (r *ClassificationRepo) SetImagePath(id int64, path string) error {
	_, err := r.db.Exec(`UPDATE classifications SET image_path=? WHERE id=?`, path, id)
	return err
}
