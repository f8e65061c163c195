package report

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangeops/backoffice-go/internal/domain/report"
)

type fakeSalesRepo struct {
	records []report.SalesRecord
	pages   int
}

func (f *fakeSalesRepo) Create(ctx context.Context, record report.SalesRecord) (report.SalesRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeSalesRepo) ListPage(ctx context.Context, from, to time.Time, limit, offset int) ([]report.SalesRecord, error) {
	f.pages++

	matched := make([]report.SalesRecord, 0)
	for _, rec := range f.records {
		if !rec.Date.Before(from) && !rec.Date.After(to) {
			matched = append(matched, rec)
		}
	}

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeSalesRepo) Count(ctx context.Context, from, to time.Time) (int64, error) {
	return int64(len(f.records)), nil
}

func salesDay(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(date, register, gross string, count int) report.SalesRecord {
	return report.SalesRecord{
		Date:             salesDay(date),
		Register:         register,
		GrossAmount:      decimal.RequireFromString(gross),
		NetAmount:        decimal.RequireFromString(gross),
		TaxAmount:        decimal.Zero,
		TransactionCount: count,
	}
}

func TestKPI_RollsUpRegistersPerDay(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{records: []report.SalesRecord{
		record("2023-10-02", "front", "1200.50", 40),
		record("2023-10-02", "range", "800.25", 12),
		record("2023-10-03", "front", "999.99", 31),
	}}
	svc := NewReportService(repo)

	out, err := svc.KPI(context.Background(), report.KPIRequest{
		StartDate: "2023-10-01",
		EndDate:   "2023-10-07",
	})
	require.NoError(t, err)

	require.Len(t, out.Days, 2)
	assert.True(t, out.Days[0].Date.Before(out.Days[1].Date))
	assert.Equal(t, "2000.75", out.Days[0].GrossAmount.String())
	assert.Equal(t, 52, out.Days[0].TransactionCount)
	assert.Equal(t, "3000.74", out.GrossAmount.String())
	assert.Equal(t, 83, out.TransactionCount)
}

func TestKPI_AverageTicket(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{records: []report.SalesRecord{
		record("2023-10-02", "front", "100.00", 3),
	}}
	svc := NewReportService(repo)

	out, err := svc.KPI(context.Background(), report.KPIRequest{
		StartDate: "2023-10-01",
		EndDate:   "2023-10-07",
	})
	require.NoError(t, err)
	assert.Equal(t, "33.33", out.AverageTicket.String())
}

func TestKPI_EmptyRange(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeSalesRepo{})

	out, err := svc.KPI(context.Background(), report.KPIRequest{
		StartDate: "2023-10-01",
		EndDate:   "2023-10-07",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Days)
	assert.True(t, out.GrossAmount.IsZero())
	assert.True(t, out.AverageTicket.IsZero())
}

func TestKPI_InvertedRangeRejected(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeSalesRepo{})

	_, err := svc.KPI(context.Background(), report.KPIRequest{
		StartDate: "2023-10-07",
		EndDate:   "2023-10-01",
	})
	assert.ErrorIs(t, err, report.ErrInvalidRange)
}

// A range holding more records than one page must be walked page by
// page until a short page comes back.
func TestKPI_WalksAllPages(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{}
	for i := 0; i < kpiPageSize+50; i++ {
		repo.records = append(repo.records, record("2023-10-02", "r"+strconv.Itoa(i), "1.00", 1))
	}
	svc := NewReportService(repo)

	out, err := svc.KPI(context.Background(), report.KPIRequest{
		StartDate: "2023-10-01",
		EndDate:   "2023-10-07",
	})
	require.NoError(t, err)
	assert.Equal(t, kpiPageSize+50, out.TransactionCount)
	assert.Equal(t, "550.00", out.GrossAmount.StringFixed(2))
	assert.GreaterOrEqual(t, repo.pages, 2)
}

func TestCreateSalesRecord_ParsesMoney(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{}
	svc := NewReportService(repo)

	rec, err := svc.CreateSalesRecord(context.Background(), report.CreateSalesRecordRequest{
		Date:             "2023-10-02",
		Register:         "front",
		GrossAmount:      "1234.56",
		NetAmount:        "1100.00",
		TaxAmount:        "134.56",
		TransactionCount: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "1234.56", rec.GrossAmount.String())
}

func TestCreateSalesRecord_RejectsBadMoney(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeSalesRepo{})

	_, err := svc.CreateSalesRecord(context.Background(), report.CreateSalesRecordRequest{
		Date:             "2023-10-02",
		Register:         "front",
		GrossAmount:      "12x.56",
		NetAmount:        "1.00",
		TaxAmount:        "0.00",
		TransactionCount: 1,
	})
	assert.Error(t, err)
}
