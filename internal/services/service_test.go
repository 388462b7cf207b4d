package services

import (
	"database/sql"
	"testing"

	"github.com/JasirAhamed786/unifield-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
