package bulletin

import (
	"context"
)

// PostRepository - interface for bulletin_posts table
type PostRepository interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id string) (Post, error)
	// List returns pinned posts first, then newest first.
	List(ctx context.Context, limit, offset int) ([]Post, int64, error)
	Update(ctx context.Context, post Post) error
	Delete(ctx context.Context, id string) error
}
