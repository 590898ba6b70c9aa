package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/mocks"
	"github.com/govgoose/govgoose/services"
	"github.com/govgoose/govgoose/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectControllerCreate(t *testing.T) {
	t.Run("should answer 400 for an inverted date range", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)
		projectService.On("Create", "user-1", mock.Anything).Return(models.Project{}, services.ErrInvalidDateRange)

		ctx, _ := newJSONContext(http.MethodPost, "/projects/", `{"title":"Downtown","startDate":"2026-05-01T00:00:00Z","endDate":"2026-04-01T00:00:00Z"}`)
		err := NewProjectController(projectService).Create(ctx)

		he := requireHTTPError(t, err, http.StatusBadRequest)
		assert.Equal(t, services.ErrInvalidDateRange.Error(), he.Message)
	})

	t.Run("should require a title", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/projects/", `{}`)
		err := NewProjectController(mocks.NewProjectService(t)).Create(ctx)

		requireHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestProjectControllerAddCodeChecks(t *testing.T) {
	project := models.Project{Model: models.Model{ID: uuid.New()}}
	codeCheckID := uuid.New()

	projectService := mocks.NewProjectService(t)
	projectService.On("AddCodeChecks", project.ID, []uuid.UUID{codeCheckID}).Return(dtos.ProjectAddCodeChecksResponse{
		Added:        []uuid.UUID{},
		AlreadyAdded: []uuid.UUID{codeCheckID},
		Message:      "already added",
	}, nil)

	ctx, rec := newJSONContext(http.MethodPost, "/", `{"codeCheckIds":["`+codeCheckID.String()+`"]}`)
	shared.SetProject(ctx, project)

	require.NoError(t, NewProjectController(projectService).AddCodeChecks(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"already added"`)
}

func TestProjectUserControllerChangeRole(t *testing.T) {
	project := models.Project{Model: models.Model{ID: uuid.New()}}

	t.Run("should answer 400 if the change is not confirmed", func(t *testing.T) {
		projectUserService := mocks.NewProjectUserService(t)
		projectUserService.On("ChangeRole", project.ID, "user-2", dtos.ProjectChangeRoleRequest{Role: "viewer"}).Return(models.ProjectUser{}, services.ErrRoleChangeNotConfirmed)

		ctx, _ := newJSONContext(http.MethodPut, "/", `{"role":"viewer"}`)
		ctx.SetParamNames("userID")
		ctx.SetParamValues("user-2")
		shared.SetProject(ctx, project)

		err := NewProjectUserController(projectUserService).ChangeRole(ctx)
		requireHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should answer 409 for duplicate members", func(t *testing.T) {
		projectUserService := mocks.NewProjectUserService(t)
		projectUserService.On("Add", project.ID, mock.Anything).Return(models.ProjectUser{}, services.ErrAlreadyMember)

		ctx, _ := newJSONContext(http.MethodPost, "/", `{"userId":"user-2","role":"collaborator"}`)
		shared.SetProject(ctx, project)

		err := NewProjectUserController(projectUserService).Add(ctx)
		requireHTTPError(t, err, http.StatusConflict)
	})
}
