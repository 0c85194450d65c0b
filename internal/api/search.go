package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkcast/backend/internal/service"
	"github.com/forkcast/backend/internal/types"
)

// RecipeSearcher runs the search orchestration flow.
type RecipeSearcher interface {
	Search(ctx context.Context, searchID string, req *types.SearchRequest) (*types.Recipe, error)
}

// SearchHandler handles recipe search requests
type SearchHandler struct {
	searcher RecipeSearcher
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(searcher RecipeSearcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// RegisterRoutes registers the recipe search routes. guard may be nil.
func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup, guard gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	if guard != nil {
		recipes.Use(guard)
	}
	recipes.POST("/search", h.Search)
}

// Search handles one search invocation
func (h *SearchHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	searchID := uuid.New().String()
	recipe, err := h.searcher.Search(c.Request.Context(), searchID, &req)
	if err != nil {
		renderSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SearchResponse{
		SearchID: searchID,
		Recipe:   recipe,
	})
}

// renderSearchError maps the error taxonomy onto HTTP responses. The
// config_required flag tells the client to reopen the credential entry.
func renderSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCredentialAbsent), errors.Is(err, service.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":           err.Error(),
			"config_required": true,
		})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "The provider rate limit was reached. Please retry later.",
		})
	default:
		resp := gin.H{"error": "Failed to generate recipe"}
		var genErr *service.GenerationError
		if errors.As(err, &genErr) && genErr.Detail != "" {
			resp["detail"] = genErr.Detail
		}
		c.JSON(http.StatusBadGateway, resp)
	}
}
