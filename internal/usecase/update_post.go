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

func (b *blogBackend) UpdatePostHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := b.posts.Update(ctx, c.Param("id"), req.Title, req.Video, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, video and description are required"})
		case errors.Is(err, domain.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		default:
			log.Printf("update post failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		}
		return
	}

	// created_at is not echoed back on update.
	c.JSON(http.StatusOK, gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"video":       post.Video,
		"description": post.Description,
		"updated_at":  post.UpdatedAt,
	})
}
