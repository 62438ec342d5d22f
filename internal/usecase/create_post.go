package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cosmos-blog/internal/domain"
)

type postRequest struct {
	Title       string `json:"title"`
	Video       string `json:"video"`
	Description string `json:"description"`
}

func (b *blogBackend) CreatePostHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := b.posts.Create(ctx, req.Title, req.Video, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, video and description are required"})
			return
		}
		log.Printf("create post failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}
