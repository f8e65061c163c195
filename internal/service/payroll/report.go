package payroll

import (
	"sort"

	"github.com/rangeops/backoffice-go/internal/domain/payroll"
)

// AssembleReport groups day records by employee for one pay period (or
// all history when period is nil) and computes regular/overtime/sick
// totals. Input order is preserved within each employee's bucket; the
// input slice is never mutated.
//
// The overtime split is per day and linear: hours up to the daily
// threshold are regular, anything beyond is overtime. Incomplete days
// carry no worked figure, count toward nothing, and surface to the UI
// as "N/A".
func AssembleReport(records []payroll.DayRecord, period *payroll.PayPeriod, dailyOvertimeThreshold float64) payroll.PeriodReport {
	sheets := make(map[string]*payroll.EmployeeTimesheet)
	var order []string

	for _, rec := range records {
		if period != nil && !period.Contains(rec.Date) {
			continue
		}

		sheet, ok := sheets[rec.EmployeeID]
		if !ok {
			sheet = &payroll.EmployeeTimesheet{
				EmployeeID:   rec.EmployeeID,
				EmployeeName: rec.EmployeeName,
			}
			sheets[rec.EmployeeID] = sheet
			order = append(order, rec.EmployeeID)
		}

		row := payroll.DayReportRow{
			Date:           rec.Date,
			ScheduledHours: RoundHours(rec.ScheduledHours),
			SickTimeUsed:   RoundHours(rec.SickTimeUsed),
			Complete:       rec.Complete,
		}

		if rec.Complete {
			worked := RoundHours(rec.WorkedHours)
			diff := RoundHours(DeltaHours(rec.ScheduledHours, rec.WorkedHours))
			row.WorkedHours = &worked
			row.DifferenceHours = &diff

			regular := rec.WorkedHours
			overtime := 0.0
			if regular > dailyOvertimeThreshold {
				overtime = regular - dailyOvertimeThreshold
				regular = dailyOvertimeThreshold
			}
			row.RegularHours = RoundHours(regular)
			row.OvertimeHours = RoundHours(overtime)

			sheet.Totals.RegularHours = RoundHours(sheet.Totals.RegularHours + row.RegularHours)
			sheet.Totals.OvertimeHours = RoundHours(sheet.Totals.OvertimeHours + row.OvertimeHours)
		} else {
			sheet.Totals.IncompleteDay++
		}

		sheet.Totals.SickTimeUsed = RoundHours(sheet.Totals.SickTimeUsed + row.SickTimeUsed)

		row.RunningRegular = sheet.Totals.RegularHours
		row.RunningOvertime = sheet.Totals.OvertimeHours
		row.RunningSick = sheet.Totals.SickTimeUsed

		sheet.Days = append(sheet.Days, row)
	}

	// Employees sort by name for presentation; day order inside each
	// sheet stays as given.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := sheets[order[i]], sheets[order[j]]
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.EmployeeID < b.EmployeeID
	})

	out := payroll.PeriodReport{Period: period}
	for _, id := range order {
		out.Employees = append(out.Employees, *sheets[id])
	}
	return out
}
