package certification

import (
	"context"
	"time"
)

// CertificationRepository - interface for certifications table
type CertificationRepository interface {
	Create(ctx context.Context, cert Certification) (Certification, error)
	GetByID(ctx context.Context, id string) (Certification, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Certification, error)
	List(ctx context.Context) ([]Certification, error)
	// ListExpiringBefore returns certifications whose expiry falls on
	// or before the cutoff and has not already passed asOf.
	ListExpiringBefore(ctx context.Context, asOf, cutoff time.Time) ([]Certification, error)
	Update(ctx context.Context, cert Certification) error
	Delete(ctx context.Context, id string) error
}
