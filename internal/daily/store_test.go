package daily_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdle/go-server/internal/daily"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // keep the single in-memory database
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE daily_results (
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		equation   TEXT NOT NULL,
		guesses    INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		UNIQUE(user_id, date)
	)`)
	require.NoError(t, err)
	return db
}

func TestStoreInsertAndAlreadyPlayed(t *testing.T) {
	st := daily.NewStore(newTestDB(t))
	ctx := context.Background()

	played, err := st.AlreadyPlayed(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	assert.False(t, played)

	r := daily.Result{UserID: "u1", Date: "2024-06-01", Equation: "12+35=47", Guesses: 3, ElapsedMs: 41000}
	require.NoError(t, st.InsertResult(ctx, r))

	played, err = st.AlreadyPlayed(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	assert.True(t, played)

	// Duplicate insert is silently ignored.
	r.Guesses = 1
	require.NoError(t, st.InsertResult(ctx, r))
}

func TestStoreLeaderboardOrdering(t *testing.T) {
	st := daily.NewStore(newTestDB(t))
	ctx := context.Background()

	for _, r := range []daily.Result{
		{UserID: "slow", Date: "2024-06-01", Equation: "12+35=47", Guesses: 2, ElapsedMs: 90000},
		{UserID: "fast", Date: "2024-06-01", Equation: "12+35=47", Guesses: 4, ElapsedMs: 30000},
		{UserID: "other-day", Date: "2024-06-02", Equation: "62-39=23", Guesses: 1, ElapsedMs: 1000},
	} {
		require.NoError(t, st.InsertResult(ctx, r))
	}

	rows, err := st.Leaderboard(ctx, "2024-06-01", 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "fast", rows[0].UserID)
	assert.Equal(t, "slow", rows[1].UserID)
}
