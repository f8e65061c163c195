package bulletin

import (
	"time"
)

// Post is one bulletin-board entry. Pinned posts sort first.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// DTO
	AuthorName *string `json:"author_name,omitempty"`
}
