package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/mocks"
	"github.com/govgoose/govgoose/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectServiceCreate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	t.Run("should reject an end date before the start date", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)

		_, err := NewProjectService(projectRepository, nil, nil).Create("user-1", dtos.ProjectCreateRequest{
			Title:     "Downtown signage",
			StartDate: &end,
			EndDate:   &start,
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("should create the project owned by the user", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
			return p.OwnerID == "user-1" && p.Title == "Downtown signage"
		})).Return(nil)

		project, err := NewProjectService(projectRepository, nil, nil).Create("user-1", dtos.ProjectCreateRequest{
			Title:     "Downtown signage",
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", project.OwnerID)
	})

	t.Run("should require a title", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)

		_, err := NewProjectService(projectRepository, nil, nil).Create("user-1", dtos.ProjectCreateRequest{})
		assert.Error(t, err)
	})
}

func TestProjectServiceUpdate(t *testing.T) {
	t.Run("should validate the date range after applying the patch", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		projectRepository := mocks.NewProjectRepository(t)

		_, err := NewProjectService(projectRepository, nil, nil).Update(
			models.Project{Title: "p", StartDate: &start},
			dtos.ProjectPatchRequest{EndDate: utils.Ptr(start.AddDate(0, 0, -1))},
		)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestProjectServiceAddCodeChecks(t *testing.T) {
	projectID := uuid.New()
	existing := uuid.New()
	fresh := uuid.New()

	t.Run("should report already assigned code checks instead of inserting them", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectCodeCheckRepository := mocks.NewProjectCodeCheckRepository(t)
		codeCheckRepository := mocks.NewCodeCheckRepository(t)

		codeCheckRepository.On("List", []uuid.UUID{existing, fresh}).Return([]models.CodeCheck{
			{Model: models.Model{ID: existing}}, {Model: models.Model{ID: fresh}},
		}, nil)
		projectRepository.On("Transaction", mock.Anything).Return(runTransaction)
		projectCodeCheckRepository.On("Exists", projectID, existing).Return(true, nil)
		projectCodeCheckRepository.On("Exists", projectID, fresh).Return(false, nil)
		projectCodeCheckRepository.On("Create", mock.Anything, &models.ProjectCodeCheck{ProjectID: projectID, CodeCheckID: fresh}).Return(nil)

		res, err := NewProjectService(projectRepository, projectCodeCheckRepository, codeCheckRepository).AddCodeChecks(projectID, []uuid.UUID{existing, fresh, existing})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{fresh}, res.Added)
		assert.Equal(t, []uuid.UUID{existing}, res.AlreadyAdded)
		assert.Empty(t, res.Message)
	})

	t.Run("should answer with already added when nothing was inserted", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectCodeCheckRepository := mocks.NewProjectCodeCheckRepository(t)
		codeCheckRepository := mocks.NewCodeCheckRepository(t)

		codeCheckRepository.On("List", []uuid.UUID{existing}).Return([]models.CodeCheck{{Model: models.Model{ID: existing}}}, nil)
		projectRepository.On("Transaction", mock.Anything).Return(runTransaction)
		projectCodeCheckRepository.On("Exists", projectID, existing).Return(true, nil)

		res, err := NewProjectService(projectRepository, projectCodeCheckRepository, codeCheckRepository).AddCodeChecks(projectID, []uuid.UUID{existing})
		require.NoError(t, err)

		assert.Empty(t, res.Added)
		assert.Equal(t, "already added", res.Message)
		projectCodeCheckRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should fail for deleted or unknown code checks", func(t *testing.T) {
		codeCheckRepository := mocks.NewCodeCheckRepository(t)
		codeCheckRepository.On("List", []uuid.UUID{fresh}).Return([]models.CodeCheck{
			{Model: models.Model{ID: fresh}, Status: models.CodeCheckStatusDeleted},
		}, nil)

		_, err := NewProjectService(mocks.NewProjectRepository(t), mocks.NewProjectCodeCheckRepository(t), codeCheckRepository).AddCodeChecks(projectID, []uuid.UUID{fresh})
		assert.ErrorIs(t, err, ErrUnknownCodeCheck)
	})
}

func TestProjectServiceListCandidates(t *testing.T) {
	projectID := uuid.New()
	otherProjectID := uuid.New()
	inBoth := uuid.New()
	inOther := uuid.New()
	unassigned := uuid.New()

	codeCheckRepository := mocks.NewCodeCheckRepository(t)
	projectCodeCheckRepository := mocks.NewProjectCodeCheckRepository(t)

	codeCheckRepository.On("ListActiveByUser", "user-1").Return([]models.CodeCheck{
		{Model: models.Model{ID: inBoth}},
		{Model: models.Model{ID: inOther}},
		{Model: models.Model{ID: unassigned}},
	}, nil)
	projectCodeCheckRepository.On("ProjectIDsByCodeCheck", []uuid.UUID{inBoth, inOther, unassigned}).Return(map[uuid.UUID][]uuid.UUID{
		inBoth:  {projectID, otherProjectID},
		inOther: {otherProjectID},
	}, nil)

	candidates, err := NewProjectService(nil, projectCodeCheckRepository, codeCheckRepository).ListCandidates(projectID, "user-1")
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.True(t, candidates[0].InCurrentProject)
	assert.Equal(t, []uuid.UUID{otherProjectID}, candidates[0].OtherProjectIDs)

	assert.False(t, candidates[1].InCurrentProject)
	assert.Equal(t, []uuid.UUID{otherProjectID}, candidates[1].OtherProjectIDs)

	assert.False(t, candidates[2].InCurrentProject)
	assert.Empty(t, candidates[2].OtherProjectIDs)
}
