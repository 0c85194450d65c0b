package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/api"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/router"
	"github.com/forkcast/backend/internal/service"
)

// Server wires the services, handlers and HTTP server together.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	redis  *redis.Client
}

// New builds a fully wired server from the configuration.
func New(cfg *config.Config) (*Server, error) {
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	creds := service.NewCredentialStore(redisClient, cfg.GeminiAPIKey)
	composer := service.NewComposer(cfg.RecipeLanguage)
	generator := service.NewGenerationService(cfg.TextModel)
	illustrator := service.NewImageService(cfg.ImageModel)
	searcher := service.NewSearchService(creds, composer, generator, illustrator)

	guard := middleware.NewInFlightGuard(redisClient)

	engine := router.SetupRouter(
		cfg,
		api.NewSearchHandler(searcher),
		api.NewCredentialHandler(creds),
		api.NewRelayHandler(cfg),
		guard.Guard(),
	)

	return &Server{
		cfg:    cfg,
		engine: engine,
		redis:  redisClient,
	}, nil
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the Redis client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			return err
		}
	}
	return s.redis.Close()
}
