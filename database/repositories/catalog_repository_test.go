package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDB(t)
	repo := NewCatalogRepository(db)

	for _, e := range []models.CatalogEntry{
		{Municipality: "Austin", County: "Travis", State: "TX"},
		{Municipality: "Boulder", County: "Boulder", State: "CO"},
		{Municipality: "Round Rock", County: "Williamson", State: "TX"},
	} {
		require.Nil(t, repo.Create(nil, &e))
	}

	t.Run("should list all entries ordered by municipality", func(t *testing.T) {
		entries, err := repo.Search("")
		require.Nil(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "Austin", entries[0].Municipality)
	})

	t.Run("should search case insensitive", func(t *testing.T) {
		entries, err := repo.Search("tx")
		require.Nil(t, err)
		assert.Len(t, entries, 2)

		entries, err = repo.Search("TRAVIS")
		require.Nil(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Austin", entries[0].Municipality)
	})

	t.Run("should return record not found for a missing id", func(t *testing.T) {
		_, err := repo.Read(uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
