package certification

import (
	"context"
)

type CertificationService interface {
	Create(ctx context.Context, req CreateCertificationRequest) (Certification, error)
	Get(ctx context.Context, id string) (Certification, error)
	List(ctx context.Context) ([]Certification, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Certification, error)
	Update(ctx context.Context, req UpdateCertificationRequest) (Certification, error)
	Delete(ctx context.Context, id string) error
}
