package usecase

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (b *blogBackend) ExportHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// Anything other than "posts" or "visits" exports everything.
	exportType := c.DefaultQuery("type", "all")

	payload := gin.H{"exportDate": time.Now().UTC().Format(time.RFC3339)}

	if exportType != "visits" {
		posts, err := b.posts.ExportAll(ctx)
		if err != nil {
			log.Printf("export posts failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export posts"})
			return
		}
		payload["posts"] = posts
	}

	if exportType != "posts" {
		visits, err := b.visits.ExportAll(ctx)
		if err != nil {
			log.Printf("export visits failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export visits"})
			return
		}
		payload["visits"] = visits
	}

	c.JSON(http.StatusOK, payload)
}
