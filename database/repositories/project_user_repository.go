package repositories

import (
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/utils"
	"gorm.io/gorm"
)

type projectUserRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProjectUser, *gorm.DB]
}

func NewProjectUserRepository(db *gorm.DB) *projectUserRepository {
	return &projectUserRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProjectUser](db),
	}
}

func (r *projectUserRepository) All() ([]models.ProjectUser, error) {
	var users []models.ProjectUser
	err := r.db.Find(&users).Error
	return users, err
}

func (r *projectUserRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectUser, error) {
	var users []models.ProjectUser
	err := r.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *projectUserRepository) ReadByProjectAndUser(projectID uuid.UUID, userID string) (models.ProjectUser, error) {
	var user models.ProjectUser
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&user).Error
	return user, err
}
