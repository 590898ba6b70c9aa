package database_test

import (
	"testing"

	"github.com/govgoose/govgoose/database"
	"github.com/govgoose/govgoose/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsWithDB(t *testing.T) {
	db := integrationtestutil.InitDatabaseContainer(t)

	version, dirty, err := database.GetMigrationVersionWithDB(db)
	require.Nil(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)

	// running again is a no-op
	assert.Nil(t, database.RunMigrationsWithDB(db))

	for _, table := range []string{"code_checks", "projects", "project_code_checks", "project_users", "documents", "code_check_documents", "catalog_entries"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
