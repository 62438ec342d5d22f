package usecase

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultCleanupDays = 12

func (b *blogBackend) CleanupVisitsHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	days := defaultCleanupDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative number"})
			return
		}
		days = parsed
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := b.visits.Cleanup(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Failed to clean up visits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clean up visits"})
		return
	}

	log.Printf("🗑️ Deleted %d visits older than %d days", deleted, days)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("deleted %d visits older than %d days", deleted, days),
	})
}
