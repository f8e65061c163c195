package postgresql

import (
	"context"
	"time"

	"github.com/rangeops/backoffice-go/internal/domain/report"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type salesRepositoryImpl struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) report.SalesRepository {
	return &salesRepositoryImpl{db: db}
}

// Create implements report.SalesRepository.
func (r *salesRepositoryImpl) Create(ctx context.Context, record report.SalesRecord) (report.SalesRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales_records
			(date, register, gross_amount, net_amount, tax_amount, transaction_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.Date,
		record.Register,
		record.GrossAmount,
		record.NetAmount,
		record.TaxAmount,
		record.TransactionCount,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return report.SalesRecord{}, err
	}

	return record, nil
}

// ListPage implements report.SalesRepository.
func (r *salesRepositoryImpl) ListPage(ctx context.Context, from, to time.Time, limit, offset int) ([]report.SalesRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, register, gross_amount, net_amount, tax_amount, transaction_count, created_at
		FROM sales_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, register
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]report.SalesRecord, 0)
	for rows.Next() {
		var record report.SalesRecord
		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Register,
			&record.GrossAmount,
			&record.NetAmount,
			&record.TaxAmount,
			&record.TransactionCount,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count implements report.SalesRepository.
func (r *salesRepositoryImpl) Count(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales_records WHERE date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
