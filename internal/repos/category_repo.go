package repos

import (
	"ecycle/internal/catalog"
	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.ProductCategory, error) {
	var out []domain.ProductCategory
	err := r.db.Select(&out, `SELECT id,name,icon,created_at FROM product_categories ORDER BY id`)
	return out, err
}

// SeedDefaults inserts the default categories if they are absent. Each insert is
// guarded by NOT EXISTS and the whole batch runs in one transaction, so two
// requests racing on an empty table cannot produce duplicates (the unique index
// on LOWER(name) backs this up).
func (r *CategoryRepo) SeedDefaults(defaults []catalog.Category) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, cat := range defaults {
		if _, err := tx.Exec(`
			INSERT INTO product_categories(name, icon)
			SELECT ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM product_categories WHERE LOWER(name)=LOWER(?))
		`, cat.Name, cat.Icon, cat.Name); err != nil {
			return err
		}
	}

	return tx.Commit()
}
