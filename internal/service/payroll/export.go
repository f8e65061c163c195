package payroll

import (
	"context"
	"fmt"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Employee", "Date", "Scheduled", "Worked", "Difference",
	"Regular", "Overtime", "Sick Used",
}

// ExportPeriodReport implements payroll.PayrollService. It renders the
// period report as an .xlsx workbook, one sheet, one row per
// employee-day plus a totals row per employee. Incomplete days show
// "N/A" in the worked and difference columns.
func (s *payrollServiceImpl) ExportPeriodReport(ctx context.Context, req payroll.PeriodReportRequest) ([]byte, error) {
	report, err := s.PeriodReport(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Timesheet"
	f.SetSheetName("Sheet1", sheet)

	title := "All pay periods"
	if report.Period != nil {
		title = report.Period.Label
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("failed to write export title: %w", err)
	}

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	rowIdx := 3
	writeRow := func(values []interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		rowIdx++
		return nil
	}

	for _, emp := range report.Employees {
		for _, day := range emp.Days {
			worked := interface{}("N/A")
			diff := interface{}("N/A")
			if day.Complete {
				worked = *day.WorkedHours
				diff = *day.DifferenceHours
			}
			err := writeRow([]interface{}{
				emp.EmployeeName,
				day.Date.Format("2006-01-02"),
				day.ScheduledHours,
				worked,
				diff,
				day.RegularHours,
				day.OvertimeHours,
				day.SickTimeUsed,
			})
			if err != nil {
				return nil, err
			}
		}
		err := writeRow([]interface{}{
			emp.EmployeeName + " - total", "", "", "", "",
			emp.Totals.RegularHours,
			emp.Totals.OvertimeHours,
			emp.Totals.SickTimeUsed,
		})
		if err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
