package postgresql_test

import (
	"context"
	"testing"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRepository_ApplyDelta(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewBalanceRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, payroll.SickTimeBalance{
		EmployeeID: "emp-1",
		Hours:      10,
	})
	require.NoError(t, err)

	t.Run("debit within balance", func(t *testing.T) {
		balance, err := repo.ApplyDelta(ctx, "emp-1", -2.5)
		require.NoError(t, err)
		assert.InDelta(t, 7.5, balance.Hours, 1e-9)
	})

	t.Run("debit past zero is refused", func(t *testing.T) {
		_, err := repo.ApplyDelta(ctx, "emp-1", -100)
		assert.ErrorIs(t, err, payroll.ErrTransferExceedsBalance)

		balance, err := repo.GetByEmployeeID(ctx, "emp-1")
		require.NoError(t, err)
		assert.InDelta(t, 7.5, balance.Hours, 1e-9)
	})

	t.Run("debit to exactly zero", func(t *testing.T) {
		balance, err := repo.ApplyDelta(ctx, "emp-1", -7.5)
		require.NoError(t, err)
		assert.Zero(t, balance.Hours)
	})

	t.Run("credit", func(t *testing.T) {
		balance, err := repo.ApplyDelta(ctx, "emp-1", 4)
		require.NoError(t, err)
		assert.InDelta(t, 4, balance.Hours, 1e-9)
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := repo.ApplyDelta(ctx, "emp-unknown", -1)
		assert.ErrorIs(t, err, payroll.ErrBalanceNotFound)
	})
}

func TestBalanceRepository_GetByEmployeeID_NotFound(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewBalanceRepository(db)

	_, err := repo.GetByEmployeeID(context.Background(), "emp-unknown")
	assert.ErrorIs(t, err, payroll.ErrBalanceNotFound)
}
