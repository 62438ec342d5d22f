package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// openTestDB creates a bootstrapped in-memory database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// A :memory: database is per-connection; keep the pool at one so
	// every query sees the same schema and data.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Bootstrap(db))
	return db
}

// insertVisitAt writes a visit row with an explicit timestamp, which
// Record deliberately does not allow.
func insertVisitAt(t *testing.T, db *sql.DB, ip, userAgent, page string, ts time.Time) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO visits (ip, user_agent, page, timestamp)
		VALUES (?, ?, ?, ?)
	`, ip, userAgent, page, ts.UTC())
	require.NoError(t, err)
}
