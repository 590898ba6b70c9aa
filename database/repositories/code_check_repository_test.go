package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestCodeCheckRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDB(t)
	repo := NewCodeCheckRepository(db)

	now := time.Now()
	own := models.CodeCheck{Model: models.Model{CreatedAt: now.Add(-time.Hour)}, Address: "1 Main St", Latitude: 1, Longitude: 2, ZoningCodes: datatypes.JSONSlice[string]{"C-1"}, Status: models.CodeCheckStatusPending, UserID: "user-1"}
	newer := models.CodeCheck{Model: models.Model{CreatedAt: now}, Address: "2 Main St", Status: models.CodeCheckStatusCompleted, UserID: "user-1"}
	other := models.CodeCheck{Address: "3 Side St", Status: models.CodeCheckStatusPending, UserID: "user-2"}
	deleted := models.CodeCheck{Address: "4 Gone St", Status: models.CodeCheckStatusDeleted, UserID: "user-1"}

	for _, c := range []*models.CodeCheck{&own, &newer, &other, &deleted} {
		require.Nil(t, repo.Create(nil, c))
		assert.NotEqual(t, uuid.Nil, c.ID)
	}

	t.Run("should list the non deleted code checks of a user newest first", func(t *testing.T) {
		list, err := repo.ListActiveByUser("user-1")
		require.Nil(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, own.ID, list[1].ID)
		assert.Equal(t, []string{"C-1"}, []string(list[1].ZoningCodes))
	})

	t.Run("should list the non deleted code checks of all users", func(t *testing.T) {
		list, err := repo.ListActive()
		require.Nil(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("should not read deleted code checks", func(t *testing.T) {
		_, err := repo.ReadActive(deleted.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		found, err := repo.ReadActive(own.ID)
		require.Nil(t, err)
		assert.Equal(t, "1 Main St", found.Address)
	})

	t.Run("should update status and details", func(t *testing.T) {
		require.Nil(t, repo.UpdateDetails(nil, own.ID, datatypes.JSON(`{"answers":[]}`), models.CodeCheckStatusCompleted))
		found, err := repo.Read(own.ID)
		require.Nil(t, err)
		assert.Equal(t, models.CodeCheckStatusCompleted, found.Status)
		assert.JSONEq(t, `{"answers":[]}`, string(found.Details))

		require.Nil(t, repo.UpdateStatus(nil, own.ID, models.CodeCheckStatusDeleted))
		_, err = repo.ReadActive(own.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("should return record not found when updating a missing row", func(t *testing.T) {
		err := repo.UpdateStatus(nil, uuid.New(), models.CodeCheckStatusDeleted)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("should link documents idempotently", func(t *testing.T) {
		documentRepo := NewDocumentRepository(db)
		doc := models.Document{Title: "sign code", URL: "users/user-1/sign-code.pdf", UserID: "user-1"}
		require.Nil(t, documentRepo.Create(nil, &doc))

		require.Nil(t, repo.LinkDocuments(nil, newer.ID, []uuid.UUID{doc.ID}))
		require.Nil(t, repo.LinkDocuments(nil, newer.ID, []uuid.UUID{doc.ID}))

		docs, err := documentRepo.ListByCodeCheck(newer.ID)
		require.Nil(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, doc.ID, docs[0].ID)

		found, err := repo.ReadActive(newer.ID)
		require.Nil(t, err)
		assert.Len(t, found.Documents, 1)
	})
}
