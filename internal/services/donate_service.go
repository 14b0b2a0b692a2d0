package services

import (
	"database/sql"
	"errors"

	"ecycle/internal/catalog"
	"ecycle/internal/domain"
	"ecycle/internal/repos"
)

type DonateService struct {
	Donations       *repos.DonationRepo
	Classifications *repos.ClassificationRepo
	Catalog         *catalog.Catalog
}

// Register creates a donation for an owned classification. Eligibility is the
// literal condition string "working"; case variants are rejected.
func (s *DonateService) Register(userID, classificationID int64, location string) (*domain.Donation, error) {
	c, err := s.Classifications.ByIDAndUser(classificationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassificationNotFound
		}
		return nil, err
	}
	if c.Condition != "working" {
		return nil, ErrNotWorking
	}

	d := &domain.Donation{
		UserID:           userID,
		ClassificationID: classificationID,
		Location:         location,
	}
	if err := s.Donations.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DonateService) List(userID int64) ([]domain.Donation, error) {
	return s.Donations.ListByUser(userID)
}

func (s *DonateService) Organizations() []catalog.Organization {
	return s.Catalog.Organizations
}
