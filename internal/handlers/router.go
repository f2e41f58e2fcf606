package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register wires every route. authenticate guards everything except
// sign-up, log-in and the welcome/health endpoints; loginLimiter throttles
// log-in attempts.
func Register(r *gin.Engine, users *UserHandler, docs *DocumentHandler, authenticate, loginLimiter gin.HandlerFunc) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{})
	})

	v1 := r.Group("/api/v1")

	v1.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Document Management System API",
		})
	})

	v1.POST("/users", users.SignUp)
	v1.POST("/users/login", loginLimiter, users.LogIn)

	protected := v1.Group("")
	protected.Use(authenticate)

	protected.GET("/users", users.List)
	protected.GET("/users/:id", users.Get)
	protected.PUT("/users/:id", users.Update)
	protected.DELETE("/users/:id", users.Delete)
	protected.GET("/search/users", users.Search)
	protected.GET("/users/:id/documents", users.Documents)
	protected.GET("/users/:id/documents/alone", docs.OwnedBy)

	protected.POST("/documents", docs.Create)
	protected.GET("/documents", docs.List)
	protected.GET("/documents/:id", docs.Get)
	protected.PUT("/documents/:id", docs.Update)
	protected.DELETE("/documents/:id", docs.Delete)
	protected.GET("/search/documents", docs.Search)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "API endpoint is unavailable. Refer to documentation for available endpoints",
		})
	})
}
