package interfaces

import "github.com/gin-gonic/gin"

// Usecase groups the HTTP handlers the router exposes.
type Usecase interface {
	LoginHandler(c *gin.Context)
	VerifyHandler(c *gin.Context)

	ListPostsHandler(c *gin.Context)
	GetPostHandler(c *gin.Context)
	CreatePostHandler(c *gin.Context)
	UpdatePostHandler(c *gin.Context)
	DeletePostHandler(c *gin.Context)

	RecordVisitHandler(c *gin.Context)
	GetAnalyticsHandler(c *gin.Context)
	CleanupVisitsHandler(c *gin.Context)

	ExportHandler(c *gin.Context)
}
