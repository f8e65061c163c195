package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rangeops/backoffice-go/internal/domain/certification"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type CertificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CertificationHandlerImpl struct {
	certService certification.CertificationService
}

func NewCertificationHandler(certService certification.CertificationService) CertificationHandler {
	return &CertificationHandlerImpl{certService: certService}
}

// Create implements CertificationHandler.
func (h *CertificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req certification.CreateCertificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create certification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cert, err := h.certService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create certification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Certification added", cert)
}

// Get implements CertificationHandler.
func (h *CertificationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cert)
}

// List implements CertificationHandler.
func (h *CertificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certService.List(r.Context())
	if err != nil {
		slog.Error("List certifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, certs)
}

// ListByEmployee implements CertificationHandler.
func (h *CertificationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, certs)
}

// Update implements CertificationHandler.
func (h *CertificationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req certification.UpdateCertificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update certification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	cert, err := h.certService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update certification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cert)
}

// Delete implements CertificationHandler.
func (h *CertificationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.certService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certification deleted", nil)
}
