package repositories

import (
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"gorm.io/gorm"
)

type projectCodeCheckRepository struct {
	db *gorm.DB
}

func NewProjectCodeCheckRepository(db *gorm.DB) *projectCodeCheckRepository {
	return &projectCodeCheckRepository{
		db: db,
	}
}

func (r *projectCodeCheckRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *projectCodeCheckRepository) Exists(projectID, codeCheckID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectCodeCheck{}).Where("project_id = ? AND code_check_id = ?", projectID, codeCheckID).Count(&count).Error
	return count > 0, err
}

func (r *projectCodeCheckRepository) Create(tx *gorm.DB, m *models.ProjectCodeCheck) error {
	return r.getDB(tx).Omit("Project", "CodeCheck").Create(m).Error
}

func (r *projectCodeCheckRepository) Delete(tx *gorm.DB, projectID, codeCheckID uuid.UUID) error {
	return r.getDB(tx).Where("project_id = ? AND code_check_id = ?", projectID, codeCheckID).Delete(&models.ProjectCodeCheck{}).Error
}

func (r *projectCodeCheckRepository) ListCodeChecks(projectID uuid.UUID) ([]models.CodeCheck, error) {
	var codeChecks []models.CodeCheck
	err := r.db.
		Joins("JOIN project_code_checks ON project_code_checks.code_check_id = code_checks.id").
		Where("project_code_checks.project_id = ? AND code_checks.status <> ?", projectID, models.CodeCheckStatusDeleted).
		Order("code_checks.created_at DESC").
		Find(&codeChecks).Error
	return codeChecks, err
}

func (r *projectCodeCheckRepository) ProjectIDsByCodeCheck(codeCheckIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	res := make(map[uuid.UUID][]uuid.UUID)
	if len(codeCheckIDs) == 0 {
		return res, nil
	}

	var rows []models.ProjectCodeCheck
	if err := r.db.Where("code_check_id IN ?", codeCheckIDs).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		res[row.CodeCheckID] = append(res[row.CodeCheckID], row.ProjectID)
	}
	return res, nil
}
