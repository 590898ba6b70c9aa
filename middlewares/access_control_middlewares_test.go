package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/mocks"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectContext(projectID string) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("projectID")
	c.SetParamValues(projectID)
	shared.SetSession(c, shared.NewSession("user-1"))
	return c
}

func TestProjectAccessControl(t *testing.T) {
	project := models.Project{Model: models.Model{ID: uuid.New()}, OwnerID: "owner"}

	t.Run("should set the project if the user is allowed", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)
		rbac := mocks.NewAccessControl(t)
		projectService.On("Read", project.ID).Return(project, nil)
		rbac.On("IsAllowed", project, "user-1", shared.ActionRead).Return(true, nil)

		c := newProjectContext(project.ID.String())
		var called bool
		err := ProjectAccessControl(projectService, rbac)(shared.ActionRead)(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, project, shared.GetProject(ctx))
			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should answer 404 if the user is not allowed", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)
		rbac := mocks.NewAccessControl(t)
		projectService.On("Read", project.ID).Return(project, nil)
		rbac.On("IsAllowed", project, "user-1", shared.ActionUpdate).Return(false, nil)

		err := ProjectAccessControl(projectService, rbac)(shared.ActionUpdate)(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(newProjectContext(project.ID.String()))

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})

	t.Run("should answer 404 for unknown projects", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)
		projectService.On("Read", project.ID).Return(models.Project{}, gorm.ErrRecordNotFound)

		err := ProjectAccessControl(projectService, mocks.NewAccessControl(t))(shared.ActionRead)(func(ctx echo.Context) error {
			return nil
		})(newProjectContext(project.ID.String()))

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})

	t.Run("should answer 400 for malformed ids", func(t *testing.T) {
		err := ProjectAccessControl(mocks.NewProjectService(t), mocks.NewAccessControl(t))(shared.ActionRead)(func(ctx echo.Context) error {
			return nil
		})(newProjectContext("not-a-uuid"))

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}
