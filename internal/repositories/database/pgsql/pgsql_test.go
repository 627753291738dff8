package pgsql

import (
	"context"
	"database/sql"
	"os"
	"testing"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
)

// testPool connects to the database named by TEST_PGSQL_URL, applies all
// migrations, and truncates every table so each test starts clean. Tests that
// call it are skipped when the variable is unset, keeping the default
// `go test ./...` run self-contained.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	databaseURL := os.Getenv("TEST_PGSQL_URL")
	if databaseURL == "" {
		t.Skip("TEST_PGSQL_URL not set; skipping database-backed test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx))

	applyTestMigrations(t, databaseURL)

	_, err = pool.Exec(ctx, `TRUNCATE users, checkins, quick_checkins, journal_entries, psychartist_applications, psychartists CASCADE;`)
	require.NoError(t, err)

	return pool
}

func applyTestMigrations(t *testing.T, databaseURL string) {
	t.Helper()

	migrationDB, err := sql.Open("pgx", databaseURL)
	require.NoError(t, err)
	defer migrationDB.Close()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	require.NoError(t, err)
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("failed to apply migrations: %v", err)
	}
}

// insertTestUser creates a minimal active account and returns its id.
func insertTestUser(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	userID := uuid.NewString()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (user_id, username, email, auth_provider)
		VALUES ($1, $2, $3, 'local');
	`, userID, "user_"+userID[:8], userID[:8]+"@test.example")
	require.NoError(t, err)
	return userID
}
