package bulletin

import (
	"context"

	"github.com/rangeops/backoffice-go/internal/domain/bulletin"
	"github.com/rangeops/backoffice-go/internal/pkg/sse"
)

type bulletinServiceImpl struct {
	postRepo bulletin.PostRepository
	hub      *sse.Hub
}

func NewBulletinService(postRepo bulletin.PostRepository, hub *sse.Hub) bulletin.BulletinService {
	return &bulletinServiceImpl{
		postRepo: postRepo,
		hub:      hub,
	}
}

// CreatePost implements bulletin.BulletinService.
func (s *bulletinServiceImpl) CreatePost(ctx context.Context, req bulletin.CreatePostRequest) (bulletin.Post, error) {
	if err := req.Validate(); err != nil {
		return bulletin.Post{}, err
	}

	post, err := s.postRepo.Create(ctx, bulletin.Post{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Body:     req.Body,
		Pinned:   req.Pinned,
	})
	if err != nil {
		return bulletin.Post{}, err
	}

	s.hub.Broadcast(sse.Event{
		Event: "bulletin.posted",
		Data:  post,
	})

	return post, nil
}

// GetPost implements bulletin.BulletinService.
func (s *bulletinServiceImpl) GetPost(ctx context.Context, id string) (bulletin.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts implements bulletin.BulletinService.
func (s *bulletinServiceImpl) ListPosts(ctx context.Context, limit, offset int) ([]bulletin.Post, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.List(ctx, limit, offset)
}

// UpdatePost implements bulletin.BulletinService. Only the author may
// edit their post.
func (s *bulletinServiceImpl) UpdatePost(ctx context.Context, req bulletin.UpdatePostRequest) (bulletin.Post, error) {
	if err := req.Validate(); err != nil {
		return bulletin.Post{}, err
	}

	post, err := s.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		return bulletin.Post{}, err
	}
	if post.AuthorID != req.AuthorID {
		return bulletin.Post{}, bulletin.ErrNotAuthor
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Pinned != nil {
		post.Pinned = *req.Pinned
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return bulletin.Post{}, err
	}

	return post, nil
}

// DeletePost implements bulletin.BulletinService. Authors delete their
// own posts; admins delete anything.
func (s *bulletinServiceImpl) DeletePost(ctx context.Context, id, requesterID string, requesterIsAdmin bool) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !requesterIsAdmin && post.AuthorID != requesterID {
		return bulletin.ErrNotAuthor
	}
	return s.postRepo.Delete(ctx, id)
}
