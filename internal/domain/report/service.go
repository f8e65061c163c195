package report

import (
	"context"
)

type ReportService interface {
	CreateSalesRecord(ctx context.Context, req CreateSalesRecordRequest) (SalesRecord, error)
	KPI(ctx context.Context, req KPIRequest) (KPIReport, error)
}
