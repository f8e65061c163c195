package bulletin

import (
	"context"
)

type BulletinService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (Post, error)
	GetPost(ctx context.Context, id string) (Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]Post, int64, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (Post, error)
	DeletePost(ctx context.Context, id, requesterID string, requesterIsAdmin bool) error
}
