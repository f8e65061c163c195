package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPeriods(w http.ResponseWriter, r *http.Request)
	PeriodContaining(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	GetReconciliation(w http.ResponseWriter, r *http.Request)
	PeriodReport(w http.ResponseWriter, r *http.Request)
	ExportPeriodReport(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ListPeriods implements PayrollHandler. Returns every pay period from
// the anchor through today, newest first.
func (h *PayrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.payrollService.ListPeriods(r.Context(), time.Time{})
	if err != nil {
		slog.Error("List periods service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// PeriodContaining implements PayrollHandler.
func (h *PayrollHandlerImpl) PeriodContaining(w http.ResponseWriter, r *http.Request) {
	period, err := h.payrollService.PeriodContaining(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}

// GetBalance implements PayrollHandler.
func (h *PayrollHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.payrollService.GetBalance(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// AdjustBalance implements PayrollHandler. Credits accrued sick time;
// admin only.
func (h *PayrollHandlerImpl) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req payroll.AdjustBalanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Adjust balance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	balance, err := h.payrollService.AdjustBalance(r.Context(), req)
	if err != nil {
		slog.Error("Adjust balance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Balance adjusted", balance)
}

// Reconcile implements PayrollHandler. Applies a sick-time transfer
// against one employee-day's deficit.
func (h *PayrollHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req payroll.ReconcileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reconcile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.payrollService.Reconcile(r.Context(), req)
	if err != nil {
		slog.Error("Reconcile service error", "error", err, "employee_id", req.EmployeeID, "date", req.Date)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day reconciled", record)
}

// GetReconciliation implements PayrollHandler.
func (h *PayrollHandlerImpl) GetReconciliation(w http.ResponseWriter, r *http.Request) {
	record, err := h.payrollService.GetReconciliation(
		r.Context(),
		chi.URLParam(r, "employeeID"),
		r.URL.Query().Get("date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// PeriodReport implements PayrollHandler.
func (h *PayrollHandlerImpl) PeriodReport(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodReportRequest{
		PeriodDate: r.URL.Query().Get("period_date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	report, err := h.payrollService.PeriodReport(r.Context(), req)
	if err != nil {
		slog.Error("Period report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportPeriodReport implements PayrollHandler. Streams the timesheet
// as an xlsx download.
func (h *PayrollHandlerImpl) ExportPeriodReport(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodReportRequest{
		PeriodDate: r.URL.Query().Get("period_date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	data, err := h.payrollService.ExportPeriodReport(r.Context(), req)
	if err != nil {
		slog.Error("Export period report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "timesheet.xlsx"
	if req.PeriodDate != "" {
		filename = fmt.Sprintf("timesheet-%s.xlsx", req.PeriodDate)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
