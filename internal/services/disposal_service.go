package services

import (
	"database/sql"
	"errors"

	"ecycle/internal/catalog"
	"ecycle/internal/domain"
	"ecycle/internal/repos"
)

type DisposalService struct {
	Disposals       *repos.DisposalRepo
	Classifications *repos.ClassificationRepo
	Catalog         *catalog.Catalog
}

type DisposalInput struct {
	ClassificationID int64
	DisposalMethod   string
	PickupDate       *string
	PickupLocation   *string
	VendorFilter     string
	SelectedVendor   *string
}

// Schedule creates a disposal for a classification the user owns. Status
// starts at "pending"; nothing in scope advances it.
func (s *DisposalService) Schedule(userID int64, in DisposalInput) (*domain.Disposal, error) {
	if _, err := s.Classifications.ByIDAndUser(in.ClassificationID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassificationNotFound
		}
		return nil, err
	}

	d := &domain.Disposal{
		UserID:           userID,
		ClassificationID: in.ClassificationID,
		DisposalMethod:   in.DisposalMethod,
		PickupDate:       in.PickupDate,
		PickupLocation:   in.PickupLocation,
		VendorFilter:     in.VendorFilter,
		SelectedVendor:   in.SelectedVendor,
	}
	if err := s.Disposals.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DisposalService) List(userID int64) ([]domain.Disposal, error) {
	return s.Disposals.ListByUser(userID)
}

// Vendors returns the fixed vendor directory for a category. Unknown
// categories yield an empty list, not an error.
func (s *DisposalService) Vendors(vendorType string) []catalog.Vendor {
	vendors := s.Catalog.Vendors[vendorType]
	if vendors == nil {
		return []catalog.Vendor{}
	}
	return vendors
}
