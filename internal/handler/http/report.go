package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rangeops/backoffice-go/internal/domain/report"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type ReportHandler interface {
	CreateSalesRecord(w http.ResponseWriter, r *http.Request)
	KPI(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// CreateSalesRecord implements ReportHandler.
func (h *ReportHandlerImpl) CreateSalesRecord(w http.ResponseWriter, r *http.Request) {
	var req report.CreateSalesRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create sales record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.reportService.CreateSalesRecord(r.Context(), req)
	if err != nil {
		slog.Error("Create sales record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sales record created", record)
}

// KPI implements ReportHandler.
func (h *ReportHandlerImpl) KPI(w http.ResponseWriter, r *http.Request) {
	req := report.KPIRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	kpi, err := h.reportService.KPI(r.Context(), req)
	if err != nil {
		slog.Error("KPI service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi)
}
