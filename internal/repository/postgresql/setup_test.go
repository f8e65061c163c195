package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/rangeops/backoffice-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// testDatabase connects to the database named by TEST_DATABASE_URL and
// makes sure the payroll tables exist. Tests that need a live database
// are skipped when the variable is unset.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS sick_time_balances (
			employee_id TEXT PRIMARY KEY,
			hours DOUBLE PRECISION NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reconciliation_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id TEXT NOT NULL,
			date DATE NOT NULL,
			scheduled_hours DOUBLE PRECISION NOT NULL,
			worked_hours DOUBLE PRECISION NOT NULL,
			difference_hours DOUBLE PRECISION NOT NULL,
			sick_time_applied DOUBLE PRECISION NOT NULL,
			resulting_balance DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			UNIQUE (employee_id, date)
		)`,
	} {
		_, err := db.Exec(ctx, ddl)
		require.NoError(t, err)
	}

	for _, table := range []string{"sick_time_balances", "reconciliation_records"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}

	return db
}
