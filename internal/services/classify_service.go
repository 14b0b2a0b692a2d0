package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"ecycle/internal/blob"
	"ecycle/internal/domain"
	"ecycle/internal/repos"
)

type ClassifyService struct {
	Classifications *repos.ClassificationRepo
	Blobs           blob.Store
}

type ClassificationInput struct {
	ItemName    string
	Description string
	Condition   string
	Category    string
}

func (s *ClassifyService) Create(userID int64, in ClassificationInput) (*domain.Classification, error) {
	c := &domain.Classification{
		UserID:      userID,
		ItemName:    in.ItemName,
		Description: in.Description,
		Condition:   in.Condition,
		Category:    in.Category,
	}
	if err := s.Classifications.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClassifyService) List(userID int64) ([]domain.Classification, error) {
	return s.Classifications.ListByUser(userID)
}

// AttachImage stores the upload under "<id>_<filename>" and records the path on
// the owned classification.
func (s *ClassifyService) AttachImage(userID, classificationID int64, filename string, r io.Reader) (string, error) {
	if _, err := s.Classifications.ByIDAndUser(classificationID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrClassificationNotFound
		}
		return "", err
	}

	path, err := s.Blobs.Save(fmt.Sprintf("%d_%s", classificationID, filename), r)
	if err != nil {
		return "", err
	}
	if err := s.Classifications.SetImagePath(classificationID, path); err != nil {
		return "", err
	}
	return path, nil
}
