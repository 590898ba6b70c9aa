package repositories

import (
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type codeCheckRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.CodeCheck, *gorm.DB]
}

func NewCodeCheckRepository(db *gorm.DB) *codeCheckRepository {
	return &codeCheckRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.CodeCheck](db),
	}
}

// Save persists the columns of the code check only, linked documents are managed by LinkDocuments.
func (r *codeCheckRepository) Save(tx *gorm.DB, codeCheck *models.CodeCheck) error {
	return r.Repository.GetDB(tx).Omit(clause.Associations).Save(codeCheck).Error
}

func (r *codeCheckRepository) ReadActive(id uuid.UUID) (models.CodeCheck, error) {
	var codeCheck models.CodeCheck
	err := r.db.Preload("Documents").Where("id = ? AND status <> ?", id, models.CodeCheckStatusDeleted).First(&codeCheck).Error
	return codeCheck, err
}

func (r *codeCheckRepository) ListActive() ([]models.CodeCheck, error) {
	var codeChecks []models.CodeCheck
	err := r.db.Where("status <> ?", models.CodeCheckStatusDeleted).Order("created_at DESC").Find(&codeChecks).Error
	return codeChecks, err
}

func (r *codeCheckRepository) ListActiveByUser(userID string) ([]models.CodeCheck, error) {
	var codeChecks []models.CodeCheck
	err := r.db.Where("user_id = ? AND status <> ?", userID, models.CodeCheckStatusDeleted).Order("created_at DESC").Find(&codeChecks).Error
	return codeChecks, err
}

func (r *codeCheckRepository) UpdateStatus(tx *gorm.DB, id uuid.UUID, status models.CodeCheckStatus) error {
	res := r.Repository.GetDB(tx).Model(&models.CodeCheck{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *codeCheckRepository) UpdateDetails(tx *gorm.DB, id uuid.UUID, details datatypes.JSON, status models.CodeCheckStatus) error {
	res := r.Repository.GetDB(tx).Model(&models.CodeCheck{}).Where("id = ?", id).Updates(map[string]any{
		"details": details,
		"status":  status,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *codeCheckRepository) LinkDocuments(tx *gorm.DB, codeCheckID uuid.UUID, documentIDs []uuid.UUID) error {
	if len(documentIDs) == 0 {
		return nil
	}
	links := utils.Map(documentIDs, func(id uuid.UUID) models.CodeCheckDocument {
		return models.CodeCheckDocument{CodeCheckID: codeCheckID, DocumentID: id}
	})
	// linking twice is a no-op
	return r.Repository.GetDB(tx).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
