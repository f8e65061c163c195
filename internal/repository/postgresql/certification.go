package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rangeops/backoffice-go/internal/domain/certification"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type certificationRepositoryImpl struct {
	db *database.DB
}

func NewCertificationRepository(db *database.DB) certification.CertificationRepository {
	return &certificationRepositoryImpl{db: db}
}

const certificationColumns = `
	c.id, c.employee_id, c.name, c.issuing_body, c.issued_at, c.expires_at,
	c.created_at, c.updated_at,
	e.full_name AS employee_name
`

// Create implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) Create(ctx context.Context, cert certification.Certification) (certification.Certification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO certifications (employee_id, name, issuing_body, issued_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cert.EmployeeID,
		cert.Name,
		cert.IssuingBody,
		cert.IssuedAt,
		cert.ExpiresAt,
	).Scan(&cert.ID, &cert.CreatedAt, &cert.UpdatedAt)
	if err != nil {
		return certification.Certification{}, err
	}

	return cert, nil
}

// GetByID implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) GetByID(ctx context.Context, id string) (certification.Certification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + certificationColumns + `
		FROM certifications c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.id = $1
	`

	var cert certification.Certification
	err := q.QueryRow(ctx, query, id).Scan(
		&cert.ID,
		&cert.EmployeeID,
		&cert.Name,
		&cert.IssuingBody,
		&cert.IssuedAt,
		&cert.ExpiresAt,
		&cert.CreatedAt,
		&cert.UpdatedAt,
		&cert.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return certification.Certification{}, certification.ErrCertificationNotFound
		}
		return certification.Certification{}, err
	}

	return cert, nil
}

// ListByEmployee implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]certification.Certification, error) {
	query := `
		SELECT ` + certificationColumns + `
		FROM certifications c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.employee_id = $1
		ORDER BY c.expires_at NULLS LAST, c.name
	`
	return r.list(ctx, query, employeeID)
}

// List implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) List(ctx context.Context) ([]certification.Certification, error) {
	query := `
		SELECT ` + certificationColumns + `
		FROM certifications c
		JOIN employees e ON c.employee_id = e.id
		ORDER BY c.expires_at NULLS LAST, e.full_name
	`
	return r.list(ctx, query)
}

// ListExpiringBefore implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) ListExpiringBefore(ctx context.Context, asOf, cutoff time.Time) ([]certification.Certification, error) {
	query := `
		SELECT ` + certificationColumns + `
		FROM certifications c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.expires_at IS NOT NULL
		AND c.expires_at >= $1 AND c.expires_at <= $2
		ORDER BY c.expires_at, e.full_name
	`
	return r.list(ctx, query, asOf, cutoff)
}

// Update implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) Update(ctx context.Context, cert certification.Certification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE certifications
		SET name = $1, issuing_body = $2, issued_at = $3, expires_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := q.Exec(ctx, query,
		cert.Name,
		cert.IssuingBody,
		cert.IssuedAt,
		cert.ExpiresAt,
		cert.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}

	return nil
}

// Delete implements certification.CertificationRepository.
func (r *certificationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}

	return nil
}

func (r *certificationRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]certification.Certification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := make([]certification.Certification, 0)
	for rows.Next() {
		var cert certification.Certification
		if err := rows.Scan(
			&cert.ID,
			&cert.EmployeeID,
			&cert.Name,
			&cert.IssuingBody,
			&cert.IssuedAt,
			&cert.ExpiresAt,
			&cert.CreatedAt,
			&cert.UpdatedAt,
			&cert.EmployeeName,
		); err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	return certs, rows.Err()
}
