package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rangeops/backoffice-go/internal/domain/bulletin"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
)

type postRepositoryImpl struct {
	db *database.DB
}

func NewPostRepository(db *database.DB) bulletin.PostRepository {
	return &postRepositoryImpl{db: db}
}

// Create implements bulletin.PostRepository.
func (r *postRepositoryImpl) Create(ctx context.Context, post bulletin.Post) (bulletin.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bulletin_posts (author_id, title, body, pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		post.AuthorID,
		post.Title,
		post.Body,
		post.Pinned,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return bulletin.Post{}, err
	}

	return post, nil
}

// GetByID implements bulletin.PostRepository.
func (r *postRepositoryImpl) GetByID(ctx context.Context, id string) (bulletin.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT bp.id, bp.author_id, bp.title, bp.body, bp.pinned, bp.created_at, bp.updated_at,
			   u.email AS author_name
		FROM bulletin_posts bp
		JOIN users u ON bp.author_id = u.id
		WHERE bp.id = $1
	`

	var post bulletin.Post
	err := q.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Body,
		&post.Pinned,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.AuthorName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return bulletin.Post{}, bulletin.ErrPostNotFound
		}
		return bulletin.Post{}, err
	}

	return post, nil
}

// List implements bulletin.PostRepository.
func (r *postRepositoryImpl) List(ctx context.Context, limit, offset int) ([]bulletin.Post, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bulletin_posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT bp.id, bp.author_id, bp.title, bp.body, bp.pinned, bp.created_at, bp.updated_at,
			   u.email AS author_name
		FROM bulletin_posts bp
		JOIN users u ON bp.author_id = u.id
		ORDER BY bp.pinned DESC, bp.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := make([]bulletin.Post, 0)
	for rows.Next() {
		var post bulletin.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Body,
			&post.Pinned,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.AuthorName,
		); err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}

	return posts, total, rows.Err()
}

// Update implements bulletin.PostRepository.
func (r *postRepositoryImpl) Update(ctx context.Context, post bulletin.Post) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bulletin_posts
		SET title = $1, body = $2, pinned = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := q.Exec(ctx, query, post.Title, post.Body, post.Pinned, post.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return bulletin.ErrPostNotFound
	}

	return nil
}

// Delete implements bulletin.PostRepository.
func (r *postRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM bulletin_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return bulletin.ErrPostNotFound
	}

	return nil
}
