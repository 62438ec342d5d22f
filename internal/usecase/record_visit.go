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

type visitRequest struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Page      string `json:"page"`
}

func (b *blogBackend) RecordVisitHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var req visitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := b.visits.Record(ctx, req.IP, req.UserAgent, req.Page); err != nil {
		if errors.Is(err, domain.ErrMissingIP) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ip address is required"})
			return
		}
		log.Printf("record visit failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record visit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "visit recorded"})
}
