package usecase

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmos-blog/internal/middleware"
	"cosmos-blog/internal/service/auth"
)

type loginRequest struct {
	Password string `json:"password"`
}

func (b *blogBackend) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := b.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": "admin"})
}

func (b *blogBackend) VerifyHandler(c *gin.Context) {
	claims, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  gin.H{"role": claims.Role, "username": claims.Username},
	})
}
