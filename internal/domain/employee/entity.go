package employee

import (
	"time"
)

type Employee struct {
	ID        string     `json:"id"`
	UserID    *string    `json:"user_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	HireDate  time.Time  `json:"hire_date"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
