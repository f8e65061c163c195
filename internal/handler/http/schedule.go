package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rangeops/backoffice-go/internal/domain/schedule"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	CallOut(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shift, err := h.scheduleService.CreateShift(r.Context(), req)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", shift)
}

// Get implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	shift, err := h.scheduleService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shift)
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ShiftFilter{}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	shifts, err := h.scheduleService.ListShifts(r.Context(), filter)
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	shift, err := h.scheduleService.UpdateShift(r.Context(), req)
	if err != nil {
		slog.Error("Update shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shift)
}

// CallOut implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CallOut(w http.ResponseWriter, r *http.Request) {
	var req schedule.CallOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Call out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "id")

	shift, err := h.scheduleService.CallOut(r.Context(), req)
	if err != nil {
		slog.Error("Call out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift called out", shift)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
