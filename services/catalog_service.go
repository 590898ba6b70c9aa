package services

import (
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/shared"
)

type catalogService struct {
	catalogRepository shared.CatalogRepository
}

var _ shared.CatalogService = (*catalogService)(nil)

func NewCatalogService(catalogRepository shared.CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
	}
}

func (s *catalogService) List(search string) ([]models.CatalogEntry, error) {
	entries, err := s.catalogRepository.Search(search)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.CatalogEntry{}
	}
	return entries, nil
}

func (s *catalogService) Read(id uuid.UUID) (models.CatalogEntry, error) {
	return s.catalogRepository.Read(id)
}
