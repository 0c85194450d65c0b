package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/api"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	searchHandler *api.SearchHandler,
	credentialHandler *api.CredentialHandler,
	relayHandler *api.RelayHandler,
	searchGuard gin.HandlerFunc,
) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.HandleMethodNotAllowed = true

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Client-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	searchHandler.RegisterRoutes(v1, searchGuard)
	credentialHandler.RegisterRoutes(v1)
	relayHandler.RegisterRoutes(v1)

	return router
}
