package certification

import (
	"context"

	"github.com/rangeops/backoffice-go/internal/domain/certification"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

type certificationServiceImpl struct {
	certRepo     certification.CertificationRepository
	employeeRepo employee.EmployeeRepository
}

func NewCertificationService(
	certRepo certification.CertificationRepository,
	employeeRepo employee.EmployeeRepository,
) certification.CertificationService {
	return &certificationServiceImpl{
		certRepo:     certRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements certification.CertificationService.
func (s *certificationServiceImpl) Create(ctx context.Context, req certification.CreateCertificationRequest) (certification.Certification, error) {
	if err := req.Validate(); err != nil {
		return certification.Certification{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return certification.Certification{}, err
	}

	issuedAt, _ := validator.IsValidDate(req.IssuedAt)

	cert := certification.Certification{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		IssuingBody: req.IssuingBody,
		IssuedAt:    issuedAt,
	}
	if req.ExpiresAt != nil {
		expiresAt, _ := validator.IsValidDate(*req.ExpiresAt)
		cert.ExpiresAt = &expiresAt
	}

	return s.certRepo.Create(ctx, cert)
}

// Get implements certification.CertificationService.
func (s *certificationServiceImpl) Get(ctx context.Context, id string) (certification.Certification, error) {
	return s.certRepo.GetByID(ctx, id)
}

// List implements certification.CertificationService.
func (s *certificationServiceImpl) List(ctx context.Context) ([]certification.Certification, error) {
	return s.certRepo.List(ctx)
}

// ListByEmployee implements certification.CertificationService.
func (s *certificationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]certification.Certification, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.certRepo.ListByEmployee(ctx, employeeID)
}

// Update implements certification.CertificationService.
func (s *certificationServiceImpl) Update(ctx context.Context, req certification.UpdateCertificationRequest) (certification.Certification, error) {
	if err := req.Validate(); err != nil {
		return certification.Certification{}, err
	}

	cert, err := s.certRepo.GetByID(ctx, req.ID)
	if err != nil {
		return certification.Certification{}, err
	}

	if req.Name != nil {
		cert.Name = *req.Name
	}
	if req.IssuingBody != nil {
		cert.IssuingBody = req.IssuingBody
	}
	if req.ExpiresAt != nil {
		expiresAt, _ := validator.IsValidDate(*req.ExpiresAt)
		cert.ExpiresAt = &expiresAt
	}

	if err := s.certRepo.Update(ctx, cert); err != nil {
		return certification.Certification{}, err
	}

	return cert, nil
}

// Delete implements certification.CertificationService.
func (s *certificationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.certRepo.Delete(ctx, id)
}
