package domain

import (
	"errors"
	"time"
)

// Post represents a single blog entry.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Video       string    `json:"video"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Pagination describes which slice of the post list a response covers.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalPosts  int64 `json:"totalPosts"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrMissingFields = errors.New("title, video and description are required")
)
