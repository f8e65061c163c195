package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rangeops/backoffice-go/internal/domain/report"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// kpiPageSize is how many sales records each page fetch pulls while
// assembling a KPI report.
const kpiPageSize = 500

type reportServiceImpl struct {
	salesRepo report.SalesRepository
}

func NewReportService(salesRepo report.SalesRepository) report.ReportService {
	return &reportServiceImpl{salesRepo: salesRepo}
}

// CreateSalesRecord implements report.ReportService. Money comes in as
// strings from the point-of-sale export and is parsed to decimal here,
// never as float.
func (s *reportServiceImpl) CreateSalesRecord(ctx context.Context, req report.CreateSalesRecordRequest) (report.SalesRecord, error) {
	if err := req.Validate(); err != nil {
		return report.SalesRecord{}, err
	}

	gross, err := decimal.NewFromString(req.GrossAmount)
	if err != nil {
		return report.SalesRecord{}, fmt.Errorf("invalid gross_amount: %w", err)
	}
	net, err := decimal.NewFromString(req.NetAmount)
	if err != nil {
		return report.SalesRecord{}, fmt.Errorf("invalid net_amount: %w", err)
	}
	tax, err := decimal.NewFromString(req.TaxAmount)
	if err != nil {
		return report.SalesRecord{}, fmt.Errorf("invalid tax_amount: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)

	return s.salesRepo.Create(ctx, report.SalesRecord{
		Date:             date,
		Register:         req.Register,
		GrossAmount:      gross,
		NetAmount:        net,
		TaxAmount:        tax,
		TransactionCount: req.TransactionCount,
	})
}

// KPI implements report.ReportService. It pages through the range and
// rolls every register's records up into per-day and range totals.
func (s *reportServiceImpl) KPI(ctx context.Context, req report.KPIRequest) (report.KPIReport, error) {
	if err := req.Validate(); err != nil {
		return report.KPIReport{}, err
	}

	from, _ := validator.IsValidDate(req.StartDate)
	to, _ := validator.IsValidDate(req.EndDate)
	if to.Before(from) {
		return report.KPIReport{}, report.ErrInvalidRange
	}

	out := report.KPIReport{
		From:          from,
		To:            to,
		GrossAmount:   decimal.Zero,
		NetAmount:     decimal.Zero,
		TaxAmount:     decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	byDay := make(map[time.Time]*report.DailyKPI)

	for offset := 0; ; offset += kpiPageSize {
		page, err := s.salesRepo.ListPage(ctx, from, to, kpiPageSize, offset)
		if err != nil {
			return report.KPIReport{}, err
		}

		for _, rec := range page {
			day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)
			kpi, ok := byDay[day]
			if !ok {
				kpi = &report.DailyKPI{
					Date:        day,
					GrossAmount: decimal.Zero,
					NetAmount:   decimal.Zero,
					TaxAmount:   decimal.Zero,
				}
				byDay[day] = kpi
			}
			kpi.GrossAmount = kpi.GrossAmount.Add(rec.GrossAmount)
			kpi.NetAmount = kpi.NetAmount.Add(rec.NetAmount)
			kpi.TaxAmount = kpi.TaxAmount.Add(rec.TaxAmount)
			kpi.TransactionCount += rec.TransactionCount

			out.GrossAmount = out.GrossAmount.Add(rec.GrossAmount)
			out.NetAmount = out.NetAmount.Add(rec.NetAmount)
			out.TaxAmount = out.TaxAmount.Add(rec.TaxAmount)
			out.TransactionCount += rec.TransactionCount
		}

		if len(page) < kpiPageSize {
			break
		}
	}

	out.Days = make([]report.DailyKPI, 0, len(byDay))
	for _, kpi := range byDay {
		out.Days = append(out.Days, *kpi)
	}
	sort.Slice(out.Days, func(i, j int) bool {
		return out.Days[i].Date.Before(out.Days[j].Date)
	})

	if out.TransactionCount > 0 {
		out.AverageTicket = out.GrossAmount.DivRound(decimal.NewFromInt(int64(out.TransactionCount)), 2)
	}

	return out, nil
}
