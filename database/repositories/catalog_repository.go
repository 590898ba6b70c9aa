package repositories

import (
	"strings"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/utils"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.CatalogEntry, *gorm.DB]
}

func NewCatalogRepository(db *gorm.DB) *catalogRepository {
	return &catalogRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.CatalogEntry](db),
	}
}

func (r *catalogRepository) Search(search string) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	q := r.db.Order("municipality ASC")

	search = strings.TrimSpace(search)
	if search != "" {
		// LOWER keeps this portable between postgres and sqlite
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(municipality) LIKE ? OR LOWER(county) LIKE ? OR LOWER(state) LIKE ?", pattern, pattern, pattern)
	}

	err := q.Find(&entries).Error
	return entries, err
}
