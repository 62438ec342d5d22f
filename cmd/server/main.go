package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cosmos-blog/internal/config"
	"cosmos-blog/internal/controller"
	"cosmos-blog/internal/repository/sqlite"
	"cosmos-blog/internal/service/auth"
	"cosmos-blog/internal/usecase"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	log.Printf("✅ SQLite database ready at %s", cfg.DBPath)

	authService := auth.NewService(cfg.JWTSecret, cfg.AdminPassword, tokenTTL)

	u, err := usecase.NewBlogBackend(db, cfg, authService)
	if err != nil {
		log.Fatalf("failed to build usecase: %v", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	controller.RegisterRoutes(r, u, authService)

	log.Printf("🚀 server listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
