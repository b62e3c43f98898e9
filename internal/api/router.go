package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swarmwrapped/wrapped-backend-go/internal/config"
	"github.com/swarmwrapped/wrapped-backend-go/internal/handler"
	"github.com/swarmwrapped/wrapped-backend-go/internal/middleware"
	"github.com/swarmwrapped/wrapped-backend-go/internal/repository"
)

// SetupRouter wires middleware, auth flow and report endpoints.
func SetupRouter(
	cfg *config.Config,
	sessions *repository.SessionRepository,
	authHandler *handler.AuthHandler,
	wrappedHandler *handler.WrappedHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Swarm Wrapped API is running",
		})
	})

	auth := r.Group("/auth")
	{
		auth.GET("/login", authHandler.Login)
		auth.GET("/callback", authHandler.Callback)
		auth.GET("/logout", authHandler.Logout)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.SessionAuth(cfg.SessionSecret, sessions))
	{
		// Each report request pages through the upstream check-in history,
		// so it gets its own limit.
		api.GET("/wrapped", middleware.RateLimit(5, time.Minute), wrappedHandler.GetWrapped)
		api.GET("/profile", wrappedHandler.GetProfile)
	}

	return r
}
