package usecase

import (
	"database/sql"

	"cosmos-blog/internal/config"
	"cosmos-blog/internal/domain"
	"cosmos-blog/internal/interfaces"
	"cosmos-blog/internal/repository/sqlite"
	"cosmos-blog/internal/service/auth"
)

type blogBackend struct {
	posts       domain.PostRepository
	visits      domain.VisitRepository
	authService auth.Service
	cfg         *config.Config
}

// NewBlogBackend creates a new usecase instance with dependency injection
func NewBlogBackend(db *sql.DB, cfg *config.Config, authService auth.Service) (interfaces.Usecase, error) {
	return &blogBackend{
		posts:       sqlite.NewPostRepository(db),
		visits:      sqlite.NewVisitRepository(db),
		authService: authService,
		cfg:         cfg,
	}, nil
}
