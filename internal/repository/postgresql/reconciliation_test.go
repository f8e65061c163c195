package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciliationRepository_Upsert(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewReconciliationRepository(db)
	ctx := context.Background()

	date := time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, payroll.ReconciliationRecord{
		EmployeeID:       "emp-1",
		Date:             date,
		ScheduledHours:   8,
		WorkedHours:      5.5,
		DifferenceHours:  -2.5,
		SickTimeApplied:  1,
		ResultingBalance: 9,
		Status:           payroll.ReconciliationStatusUnreconciled,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Same employee-day again supersedes the row instead of adding one.
	second, err := repo.Upsert(ctx, payroll.ReconciliationRecord{
		EmployeeID:       "emp-1",
		Date:             date,
		ScheduledHours:   8,
		WorkedHours:      5.5,
		DifferenceHours:  -2.5,
		SickTimeApplied:  2.5,
		ResultingBalance: 7.5,
		Status:           payroll.ReconciliationStatusReconciled,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.InDelta(t, 2.5, second.SickTimeApplied, 1e-9)
	assert.Equal(t, payroll.ReconciliationStatusReconciled, second.Status)

	records, err := repo.ListByRange(ctx, "emp-1", date.AddDate(0, 0, -7), date.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestReconciliationRepository_GetByEmployeeAndDate(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewReconciliationRepository(db)
	ctx := context.Background()

	date := time.Date(2023, 10, 3, 0, 0, 0, 0, time.UTC)

	missing, err := repo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Upsert(ctx, payroll.ReconciliationRecord{
		EmployeeID:     "emp-1",
		Date:           date,
		ScheduledHours: 8,
		WorkedHours:    8,
		Status:         payroll.ReconciliationStatusReconciled,
	})
	require.NoError(t, err)

	found, err := repo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "emp-1", found.EmployeeID)
	assert.True(t, found.Date.Equal(date))
}

func TestReconciliationRepository_ListAllByRange(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewReconciliationRepository(db)
	ctx := context.Background()

	base := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	for _, rec := range []payroll.ReconciliationRecord{
		{EmployeeID: "emp-2", Date: base.AddDate(0, 0, 1), Status: payroll.ReconciliationStatusReconciled},
		{EmployeeID: "emp-1", Date: base.AddDate(0, 0, 2), Status: payroll.ReconciliationStatusReconciled},
		{EmployeeID: "emp-1", Date: base.AddDate(0, 0, 1), Status: payroll.ReconciliationStatusReconciled},
		{EmployeeID: "emp-3", Date: base.AddDate(0, 0, 30), Status: payroll.ReconciliationStatusReconciled},
	} {
		_, err := repo.Upsert(ctx, rec)
		require.NoError(t, err)
	}

	records, err := repo.ListAllByRange(ctx, base, base.AddDate(0, 0, 14))
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Ordered by employee, then date.
	assert.Equal(t, "emp-1", records[0].EmployeeID)
	assert.Equal(t, "emp-1", records[1].EmployeeID)
	assert.Equal(t, "emp-2", records[2].EmployeeID)
	assert.True(t, records[0].Date.Before(records[1].Date))
}
