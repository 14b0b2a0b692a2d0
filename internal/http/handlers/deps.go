package handlers

import (
	"github.com/jmoiron/sqlx"

	"ecycle/internal/blob"
	"ecycle/internal/catalog"
	"ecycle/internal/repos"
	"ecycle/internal/services"
)

type Deps struct {
	AuthHandler        *AuthHandler
	AdminHandler       *AdminHandler
	ClassifyHandler    *ClassifyHandler
	DisposalHandler    *DisposalHandler
	DonateHandler      *DonateHandler
	MarketplaceHandler *MarketplaceHandler
	RepairHandler      *RepairHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService, cat *catalog.Catalog, blobs blob.Store) *Deps {
	userRepo := auth.Users
	classRepo := repos.NewClassificationRepo(db)
	disposalRepo := repos.NewDisposalRepo(db)
	donationRepo := repos.NewDonationRepo(db)
	categoryRepo := repos.NewCategoryRepo(db)
	itemRepo := repos.NewMarketplaceRepo(db)
	purchaseRepo := repos.NewPurchaseRepo(db)

	classifySvc := &services.ClassifyService{Classifications: classRepo, Blobs: blobs}
	disposalSvc := &services.DisposalService{Disposals: disposalRepo, Classifications: classRepo, Catalog: cat}
	donateSvc := &services.DonateService{Donations: donationRepo, Classifications: classRepo, Catalog: cat}
	marketSvc := &services.MarketplaceService{
		Items:           itemRepo,
		Purchases:       purchaseRepo,
		Categories:      categoryRepo,
		Classifications: classRepo,
		Catalog:         cat,
	}

	return &Deps{
		AuthHandler:        &AuthHandler{Auth: auth},
		AdminHandler:       &AdminHandler{Auth: auth, Users: userRepo},
		ClassifyHandler:    &ClassifyHandler{Classify: classifySvc},
		DisposalHandler:    &DisposalHandler{Disposal: disposalSvc},
		DonateHandler:      &DonateHandler{Donate: donateSvc},
		MarketplaceHandler: &MarketplaceHandler{Marketplace: marketSvc},
		RepairHandler:      &RepairHandler{Catalog: cat},
	}
}
