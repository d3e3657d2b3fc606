package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBCreatesSchema(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='reports'").Scan(&tableName)
	require.NoError(t, err, "Querying for reports table should not produce an error")
	assert.Equal(t, "reports", tableName, "The 'reports' table should be created")

	var indexName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_reports_team_id'").Scan(&indexName)
	require.NoError(t, err)
	assert.Equal(t, "idx_reports_team_id", indexName)
}
