package repositories

import (
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/utils"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Document, *gorm.DB]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (r *documentRepository) ListByCodeCheck(codeCheckID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.
		Joins("JOIN code_check_documents ON code_check_documents.document_id = documents.id").
		Where("code_check_documents.code_check_id = ?", codeCheckID).
		Order("code_check_documents.created_at ASC").
		Find(&documents).Error
	return documents, err
}
