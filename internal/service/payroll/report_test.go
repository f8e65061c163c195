package payroll

import (
	"testing"
	"time"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func completeDay(emp, name, date string, scheduled, worked float64) payroll.DayRecord {
	return payroll.DayRecord{
		EmployeeID:     emp,
		EmployeeName:   name,
		Date:           day(date),
		ScheduledHours: scheduled,
		WorkedHours:    worked,
		Complete:       true,
	}
}

func TestAssembleReport_OvertimeSplitLinearity(t *testing.T) {
	t.Parallel()

	records := []payroll.DayRecord{
		completeDay("e1", "Dana", "2023-10-02", 8, 11),
	}

	report := AssembleReport(records, nil, 9)
	require.Len(t, report.Employees, 1)
	require.Len(t, report.Employees[0].Days, 1)

	row := report.Employees[0].Days[0]
	assert.Equal(t, 9.0, row.RegularHours)
	assert.Equal(t, 2.0, row.OvertimeHours)
	assert.Equal(t, 11.0, row.RegularHours+row.OvertimeHours)
}

func TestAssembleReport_UnderThresholdAllRegular(t *testing.T) {
	t.Parallel()

	records := []payroll.DayRecord{
		completeDay("e1", "Dana", "2023-10-02", 8, 7.5),
	}

	report := AssembleReport(records, nil, 9)
	row := report.Employees[0].Days[0]
	assert.Equal(t, 7.5, row.RegularHours)
	assert.Equal(t, 0.0, row.OvertimeHours)
}

func TestAssembleReport_IncompleteDayExcludedFromTotals(t *testing.T) {
	t.Parallel()

	records := []payroll.DayRecord{
		completeDay("e1", "Dana", "2023-10-02", 8, 8),
		{
			EmployeeID:     "e1",
			EmployeeName:   "Dana",
			Date:           day("2023-10-03"),
			ScheduledHours: 8,
			Complete:       false,
		},
	}

	report := AssembleReport(records, nil, 9)
	require.Len(t, report.Employees, 1)
	sheet := report.Employees[0]
	require.Len(t, sheet.Days, 2)

	open := sheet.Days[1]
	assert.False(t, open.Complete)
	assert.Nil(t, open.WorkedHours, "incomplete day renders as N/A")
	assert.Nil(t, open.DifferenceHours)

	assert.Equal(t, 8.0, sheet.Totals.RegularHours)
	assert.Equal(t, 0.0, sheet.Totals.OvertimeHours)
	assert.Equal(t, 1, sheet.Totals.IncompleteDay)
}

func TestAssembleReport_GroupingStableWithinEmployee(t *testing.T) {
	t.Parallel()

	records := []payroll.DayRecord{
		completeDay("e2", "Riley", "2023-10-02", 8, 8),
		completeDay("e1", "Dana", "2023-10-02", 8, 8),
		completeDay("e2", "Riley", "2023-10-03", 8, 9),
		completeDay("e1", "Dana", "2023-10-04", 8, 6),
	}

	report := AssembleReport(records, nil, 9)
	require.Len(t, report.Employees, 2)

	// Sorted by name for presentation.
	assert.Equal(t, "Dana", report.Employees[0].EmployeeName)
	assert.Equal(t, "Riley", report.Employees[1].EmployeeName)

	// Date order within each bucket is the input order.
	assert.Equal(t, day("2023-10-02"), report.Employees[0].Days[0].Date)
	assert.Equal(t, day("2023-10-04"), report.Employees[0].Days[1].Date)
	assert.Equal(t, day("2023-10-02"), report.Employees[1].Days[0].Date)
	assert.Equal(t, day("2023-10-03"), report.Employees[1].Days[1].Date)
}

func TestAssembleReport_PeriodFilter(t *testing.T) {
	t.Parallel()

	gen, err := payroll.NewPeriodGenerator(payroll.DefaultAnchorDate, payroll.DefaultPeriodDays)
	require.NoError(t, err)
	period, err := gen.PeriodContaining(day("2023-10-02"))
	require.NoError(t, err)

	records := []payroll.DayRecord{
		completeDay("e1", "Dana", "2023-10-02", 8, 8),
		completeDay("e1", "Dana", "2023-10-20", 8, 8), // next period
	}

	report := AssembleReport(records, &period, 9)
	require.Len(t, report.Employees, 1)
	assert.Len(t, report.Employees[0].Days, 1)
	assert.Equal(t, day("2023-10-02"), report.Employees[0].Days[0].Date)
}

func TestAssembleReport_RunningTotals(t *testing.T) {
	t.Parallel()

	records := []payroll.DayRecord{
		completeDay("e1", "Dana", "2023-10-02", 8, 10),
		completeDay("e1", "Dana", "2023-10-03", 8, 11),
	}
	records[0].SickTimeUsed = 1.5

	report := AssembleReport(records, nil, 9)
	sheet := report.Employees[0]

	assert.Equal(t, 9.0, sheet.Days[0].RunningRegular)
	assert.Equal(t, 1.0, sheet.Days[0].RunningOvertime)
	assert.Equal(t, 1.5, sheet.Days[0].RunningSick)

	assert.Equal(t, 18.0, sheet.Days[1].RunningRegular)
	assert.Equal(t, 3.0, sheet.Days[1].RunningOvertime)
	assert.Equal(t, 1.5, sheet.Days[1].RunningSick)

	assert.Equal(t, 18.0, sheet.Totals.RegularHours)
	assert.Equal(t, 3.0, sheet.Totals.OvertimeHours)
	assert.Equal(t, 1.5, sheet.Totals.SickTimeUsed)
}

func TestAssembleReport_InputNotMutated(t *testing.T) {
	t.Parallel()

	records := []payroll.DayRecord{
		completeDay("e1", "Dana", "2023-10-02", 8, 10),
	}
	before := records[0]

	_ = AssembleReport(records, nil, 9)
	assert.Equal(t, before, records[0])
}
