package certification

import (
	"time"
)

// Certification is one employee credential (range safety officer,
// first aid, instructor rating) with an expiry date the reminder job
// watches.
type Certification struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Name        string     `json:"name"`
	IssuingBody *string    `json:"issuing_body"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// DTO
	EmployeeName *string `json:"employee_name,omitempty"`
}

// Expired reports whether the certification has lapsed as of now.
func (c Certification) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
