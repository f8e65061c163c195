package postgresql

import (
	"context"
	"time"

	"github.com/rangeops/backoffice-go/internal/domain/timeclock"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) timeclock.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventColumns = `
	tce.id, tce.employee_id, tce.date, tce.start_time, tce.end_time,
	tce.lunch_start, tce.lunch_end, tce.stored_total_hours, tce.computed_total_hours,
	tce.created_at, tce.updated_at,
	e.full_name AS employee_name
`

// Create implements timeclock.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, event timeclock.Event) (timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_clock_events
			(employee_id, date, start_time, end_time, lunch_start, lunch_end,
			 stored_total_hours, computed_total_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.EmployeeID,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.LunchStart,
		event.LunchEnd,
		event.StoredTotalHours,
		event.ComputedTotalHours,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return timeclock.Event{}, err
	}

	return event, nil
}

// GetByID implements timeclock.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM time_clock_events tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.id = $1
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return timeclock.Event{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return timeclock.Event{}, err
		}
		return timeclock.Event{}, timeclock.ErrEventNotFound
	}

	var event timeclock.Event
	if err := scanEvent(rows.Scan, &event); err != nil {
		return timeclock.Event{}, err
	}

	return event, nil
}

// GetByEmployeeAndDate implements timeclock.EventRepository.
func (r *eventRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM time_clock_events tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.employee_id = $1 AND tce.date = $2
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var event timeclock.Event
	if err := scanEvent(rows.Scan, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// ListByRange implements timeclock.EventRepository.
func (r *eventRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM time_clock_events tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.date BETWEEN $1 AND $2
		ORDER BY tce.employee_id, tce.date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows.Next, rows.Scan, rows.Err)
}

// ListByEmployeeAndRange implements timeclock.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM time_clock_events tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.employee_id = $1 AND tce.date BETWEEN $2 AND $3
		ORDER BY tce.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows.Next, rows.Scan, rows.Err)
}

// ListOpen implements timeclock.EventRepository.
func (r *eventRepositoryImpl) ListOpen(ctx context.Context) ([]timeclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM time_clock_events tce
		JOIN employees e ON tce.employee_id = e.id
		WHERE tce.end_time IS NULL
		ORDER BY tce.date, tce.start_time
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows.Next, rows.Scan, rows.Err)
}

// Update implements timeclock.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, event timeclock.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_clock_events
		SET start_time = $1, end_time = $2, lunch_start = $3, lunch_end = $4,
			stored_total_hours = $5, computed_total_hours = $6, updated_at = NOW()
		WHERE id = $7
	`

	result, err := q.Exec(ctx, query,
		event.StartTime,
		event.EndTime,
		event.LunchStart,
		event.LunchEnd,
		event.StoredTotalHours,
		event.ComputedTotalHours,
		event.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return timeclock.ErrEventNotFound
	}

	return nil
}

// Delete implements timeclock.EventRepository.
func (r *eventRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM time_clock_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return timeclock.ErrEventNotFound
	}

	return nil
}

func scanEvent(scan func(dest ...any) error, event *timeclock.Event) error {
	return scan(
		&event.ID,
		&event.EmployeeID,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.LunchStart,
		&event.LunchEnd,
		&event.StoredTotalHours,
		&event.ComputedTotalHours,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.EmployeeName,
	)
}

func collectEvents(next func() bool, scan func(dest ...any) error, rowsErr func() error) ([]timeclock.Event, error) {
	events := make([]timeclock.Event, 0)
	for next() {
		var event timeclock.Event
		if err := scanEvent(scan, &event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rowsErr()
}
