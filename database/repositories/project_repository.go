package repositories

import (
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/utils"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) Read(id uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.db.Preload("Users").First(&project, "id = ?", id).Error
	return project, err
}

// ListForUser returns owned projects and projects the user was added to.
func (g *projectRepository) ListForUser(userID string) ([]models.Project, error) {
	var projects []models.Project
	err := g.db.
		Where("owner_id = ?", userID).
		Or("id IN (?)", g.db.Model(&models.ProjectUser{}).Select("project_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}
