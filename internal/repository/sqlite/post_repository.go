package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cosmos-blog/internal/domain"
)

type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a SQLite implementation of domain.PostRepository.
func NewPostRepository(db *sql.DB) domain.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context, page, limit int) ([]domain.Post, domain.Pagination, error) {
	offset := (page - 1) * limit

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, video, description, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Video, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domain.Pagination{}, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Pagination{}, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("count posts: %w", err)
	}

	pagination := domain.Pagination{
		CurrentPage: page,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		TotalPosts:  total,
		HasNext:     int64(page)*int64(limit) < total,
		HasPrev:     page > 1,
	}

	return posts, pagination, nil
}

func (r *postRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, video, description, created_at, updated_at
		FROM posts
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.Video, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("query post: %w", err)
	}

	return &p, nil
}

func (r *postRepository) Create(ctx context.Context, title, video, description string) (*domain.Post, error) {
	if err := validatePost(title, video, description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:          uuid.New().String(),
		Title:       title,
		Video:       video,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, video, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, post.ID, post.Title, post.Video, post.Description, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return post, nil
}

func (r *postRepository) Update(ctx context.Context, id, title, video, description string) (*domain.Post, error) {
	if err := validatePost(title, video, description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET title = ?, video = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, title, video, description, now, id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrPostNotFound
	}

	return &domain.Post{
		ID:          id,
		Title:       title,
		Video:       video,
		Description: description,
		UpdatedAt:   now,
	}, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

func (r *postRepository) ExportAll(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, video, description, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("export posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Video, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func validatePost(title, video, description string) error {
	if strings.TrimSpace(title) == "" ||
		strings.TrimSpace(video) == "" ||
		strings.TrimSpace(description) == "" {
		return domain.ErrMissingFields
	}
	return nil
}
