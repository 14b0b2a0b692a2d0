package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"ecycle/internal/catalog"
	"ecycle/internal/domain"
	"ecycle/internal/repos"
	"ecycle/internal/services"
)

func seedUser(t *testing.T, db *sqlx.DB, email, username string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, Username: username, Hash: "x"}
	if err := repos.NewUserRepo(db).Create(u); err != nil {
		t.Fatal(err)
	}
	return u
}

func seedClassification(t *testing.T, db *sqlx.DB, userID int64, condition string) *domain.Classification {
	t.Helper()
	c := &domain.Classification{
		UserID:    userID,
		ItemName:  "old laptop",
		Condition: condition,
		Category:  "computers",
	}
	if err := repos.NewClassificationRepo(db).Create(c); err != nil {
		t.Fatal(err)
	}
	return c
}

func newMarketplace(db *sqlx.DB) *services.MarketplaceService {
	return &services.MarketplaceService{
		Items:           repos.NewMarketplaceRepo(db),
		Purchases:       repos.NewPurchaseRepo(db),
		Categories:      repos.NewCategoryRepo(db),
		Classifications: repos.NewClassificationRepo(db),
		Catalog:         catalog.Load(),
	}
}
