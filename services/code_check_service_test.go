package services

import (
	"errors"
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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func runTransaction(fn func(*gorm.DB) error) error {
	return fn(nil)
}

func TestCodeCheckServiceCreate(t *testing.T) {
	validRequest := dtos.CodeCheckCreateRequest{
		Address:     "123 Main St, Springfield",
		Latitude:    utils.Ptr(39.78),
		Longitude:   utils.Ptr(-89.65),
		ZoningCodes: []string{" C-2 ", ""},
	}

	t.Run("should create a pending code check for the user", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("Transaction", mock.Anything).Return(runTransaction)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.CodeCheck) bool {
			return c.UserID == "user-1" && c.Status == models.CodeCheckStatusPending && len(c.ZoningCodes) == 1
		})).Return(nil)

		codeCheck, err := NewCodeCheckService(repo).Create("user-1", validRequest)
		require.NoError(t, err)

		assert.Equal(t, "123 Main St, Springfield", codeCheck.Address)
		assert.Equal(t, datatypes.JSONSlice[string]{"C-2"}, codeCheck.ZoningCodes)
		repo.AssertNotCalled(t, "LinkDocuments", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should link the documents in the same transaction", func(t *testing.T) {
		documentID := uuid.New()
		req := validRequest
		req.DocumentIDs = []uuid.UUID{documentID}

		repo := mocks.NewCodeCheckRepository(t)
		repo.On("Transaction", mock.Anything).Return(runTransaction)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		repo.On("LinkDocuments", mock.Anything, mock.Anything, []uuid.UUID{documentID}).Return(errors.New("fk violation"))

		_, err := NewCodeCheckService(repo).Create("user-1", req)
		assert.ErrorContains(t, err, "could not link documents")
	})

	t.Run("should reject requests without coordinates", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)

		_, err := NewCodeCheckService(repo).Create("user-1", dtos.CodeCheckCreateRequest{Address: "123 Main St"})
		assert.Error(t, err)
	})

	t.Run("should reject anonymous users", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)

		_, err := NewCodeCheckService(repo).Create("", validRequest)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestFilterCodeChecks(t *testing.T) {
	now := time.Now()
	codeChecks := []models.CodeCheck{
		{Model: models.Model{ID: uuid.New(), CreatedAt: now.Add(-2 * time.Hour)}, Address: "1 Main St", Status: models.CodeCheckStatusPending, ZoningCodes: datatypes.JSONSlice[string]{"R-1"}},
		{Model: models.Model{ID: uuid.New(), CreatedAt: now}, Address: "2 Oak Ave", Status: models.CodeCheckStatusCompleted, ZoningCodes: datatypes.JSONSlice[string]{"C-2"}},
		{Model: models.Model{ID: uuid.New(), CreatedAt: now.Add(-time.Hour)}, Address: "3 Main St", Status: models.CodeCheckStatusCompleted},
		{Model: models.Model{ID: uuid.New(), CreatedAt: now.Add(time.Hour)}, Address: "4 Main St", Status: models.CodeCheckStatusDeleted},
	}

	addresses := func(c []models.CodeCheck) []string {
		return utils.Map(c, func(c models.CodeCheck) string { return c.Address })
	}

	cases := []struct {
		name   string
		status string
		search string
		want   []string
	}{
		{name: "all tab sorted newest first", status: "all", want: []string{"2 Oak Ave", "3 Main St", "1 Main St"}},
		{name: "empty status behaves like all", status: "", want: []string{"2 Oak Ave", "3 Main St", "1 Main St"}},
		{name: "exact status", status: "completed", want: []string{"2 Oak Ave", "3 Main St"}},
		{name: "search on address ignores case", status: "all", search: "main", want: []string{"3 Main St", "1 Main St"}},
		{name: "search on zoning codes", status: "all", search: "c-2", want: []string{"2 Oak Ave"}},
		{name: "status and search combined", status: "pending", search: "main", want: []string{"1 Main St"}},
		{name: "deleted rows never show up", status: "deleted", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterCodeChecks(codeChecks, tc.status, tc.search)
			assert.Equal(t, tc.want, addresses(got))
		})
	}
}

func TestCodeCheckServiceList(t *testing.T) {
	t.Run("should list the code checks of the user", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("ListActiveByUser", "user-1").Return([]models.CodeCheck{{Address: "1 Main St"}}, nil)

		res, err := NewCodeCheckService(repo).List("user-1", dtos.CodeCheckListQuery{})
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("should list every code check on the dashboard", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("ListActive").Return([]models.CodeCheck{{Address: "1 Main St"}, {Address: "2 Main St"}}, nil)

		res, err := NewCodeCheckService(repo).List("user-1", dtos.CodeCheckListQuery{Scope: ListScopeDashboard})
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})
}

func TestCodeCheckServiceSoftDelete(t *testing.T) {
	id := uuid.New()

	t.Run("should not touch the repository without confirmation", func(t *testing.T) {
		for _, confirmation := range []string{"", "yes", "delete it", " delete"} {
			repo := mocks.NewCodeCheckRepository(t)

			err := NewCodeCheckService(repo).SoftDelete(id, confirmation)

			assert.ErrorIs(t, err, ErrDeleteNotConfirmed, confirmation)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("should mark the code check as deleted when confirmed ignoring case", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("UpdateStatus", mock.Anything, id, models.CodeCheckStatusDeleted).Return(nil)

		err := NewCodeCheckService(repo).SoftDelete(id, "DeLeTe")
		assert.NoError(t, err)
	})

	t.Run("should return not found for unknown rows", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("UpdateStatus", mock.Anything, id, models.CodeCheckStatusDeleted).Return(gorm.ErrRecordNotFound)

		err := NewCodeCheckService(repo).SoftDelete(id, "delete")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCodeCheckServiceUpdate(t *testing.T) {
	id := uuid.New()

	t.Run("should save patched fields", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("ReadActive", id).Return(models.CodeCheck{Model: models.Model{ID: id}, Address: "old", Status: models.CodeCheckStatusPending}, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(c *models.CodeCheck) bool {
			return c.Address == "new" && c.Status == models.CodeCheckStatusInProgress
		})).Return(nil)

		codeCheck, err := NewCodeCheckService(repo).Update(id, dtos.CodeCheckPatchRequest{
			Address: utils.Ptr("new"),
			Status:  utils.Ptr("in_progress"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new", codeCheck.Address)
	})

	t.Run("should not allow deleting through a patch", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)

		_, err := NewCodeCheckService(repo).Update(id, dtos.CodeCheckPatchRequest{Status: utils.Ptr("deleted")})
		assert.Error(t, err)
	})

	t.Run("should skip the save for an empty patch", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("ReadActive", id).Return(models.CodeCheck{Model: models.Model{ID: id}}, nil)

		_, err := NewCodeCheckService(repo).Update(id, dtos.CodeCheckPatchRequest{})
		assert.NoError(t, err)
	})
}
