package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmos-blog/internal/interfaces"
	"cosmos-blog/internal/middleware"
	"cosmos-blog/internal/service/auth"
)

// RegisterRoutes wires the API routes onto the gin engine.
func RegisterRoutes(r *gin.Engine, u interfaces.Usecase, authService auth.Service) {
	requireAuth := middleware.RequireAuth(authService)

	// Prefix all API routes with /api
	api := r.Group("/api")
	{
		api.POST("/auth/login", u.LoginHandler)
		api.GET("/auth/verify", requireAuth, u.VerifyHandler)

		api.GET("/posts", u.ListPostsHandler)
		api.GET("/posts/:id", u.GetPostHandler)
		api.POST("/posts", requireAuth, u.CreatePostHandler)
		api.PUT("/posts/:id", requireAuth, u.UpdatePostHandler)
		api.DELETE("/posts/:id", requireAuth, u.DeletePostHandler)

		api.POST("/visits", u.RecordVisitHandler)

		api.GET("/analytics", requireAuth, u.GetAnalyticsHandler)
		api.DELETE("/analytics/cleanup", requireAuth, u.CleanupVisitsHandler)

		api.GET("/export", requireAuth, u.ExportHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}
