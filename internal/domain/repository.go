package domain

import (
	"context"
	"time"
)

// PostRepository defines the interface for post persistence.
type PostRepository interface {
	// List returns one page of posts, newest first, plus pagination metadata.
	List(ctx context.Context, page, limit int) ([]Post, Pagination, error)

	// Get returns the post with the given id, or ErrPostNotFound.
	Get(ctx context.Context, id string) (*Post, error)

	// Create validates the content fields, assigns a fresh id and
	// timestamps, and persists the new post.
	Create(ctx context.Context, title, video, description string) (*Post, error)

	// Update overwrites the content fields and bumps updated_at.
	Update(ctx context.Context, id, title, video, description string) (*Post, error)

	// Delete removes the post permanently, or returns ErrPostNotFound.
	Delete(ctx context.Context, id string) error

	// ExportAll returns every post, newest first.
	ExportAll(ctx context.Context) ([]Post, error)
}

// VisitRepository defines the interface for visit persistence and analytics.
type VisitRepository interface {
	// Record appends a visit with a server-assigned timestamp.
	Record(ctx context.Context, ip, userAgent, page string) error

	// Summary computes the aggregate statistics over a trailing window
	// of the given number of days.
	Summary(ctx context.Context, days int) (*AnalyticsSummary, error)

	// Cleanup deletes visits recorded strictly before olderThan and
	// returns the number of rows removed.
	Cleanup(ctx context.Context, olderThan time.Time) (int64, error)

	// ExportAll returns every visit, newest first.
	ExportAll(ctx context.Context) ([]Visit, error)
}
