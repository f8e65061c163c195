package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type TimeClockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeClockHandlerImpl struct {
	timeClockService timeclock.TimeClockService
}

func NewTimeClockHandler(timeClockService timeclock.TimeClockService) TimeClockHandler {
	return &TimeClockHandlerImpl{timeClockService: timeClockService}
}

// ClockIn implements TimeClockHandler.
func (h *TimeClockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timeclock.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.timeClockService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("Clock in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", event)
}

// ClockOut implements TimeClockHandler.
func (h *TimeClockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timeclock.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.timeClockService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("Clock out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", event)
}

// Get implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.timeClockService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, event)
}

// List implements TimeClockHandler.
func (h *TimeClockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeclock.EventFilter{}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	events, err := h.timeClockService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List events service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// Update implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timeclock.UpdateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	event, err := h.timeClockService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, event)
}

// Delete implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timeClockService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted", nil)
}
