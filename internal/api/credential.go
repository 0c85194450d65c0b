package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/internal/service"
	"github.com/forkcast/backend/internal/types"
)

// CredentialManager is the credential store surface used by the handler.
type CredentialManager interface {
	Load(ctx context.Context) (string, string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// CredentialHandler handles credential configuration requests
type CredentialHandler struct {
	store CredentialManager
}

// NewCredentialHandler creates a new CredentialHandler instance
func NewCredentialHandler(store CredentialManager) *CredentialHandler {
	return &CredentialHandler{store: store}
}

// RegisterRoutes registers the credential routes
func (h *CredentialHandler) RegisterRoutes(router *gin.RouterGroup) {
	credential := router.Group("/credential")
	{
		credential.GET("", h.Status)
		credential.PUT("", h.Save)
		credential.DELETE("", h.Clear)
	}
}

// Status reports whether a credential is configured and where it came from.
// The token itself is never returned.
func (h *CredentialHandler) Status(c *gin.Context) {
	_, source, err := h.store.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCredentialAbsent) {
			c.JSON(http.StatusOK, types.CredentialStatus{Configured: false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.CredentialStatus{
		Configured: true,
		Source:     source,
	})
}

// Save persists a new credential
func (h *CredentialHandler) Save(c *gin.Context) {
	var req types.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Save(c.Request.Context(), req.Token); err != nil {
		if errors.Is(err, service.ErrEmptyCredential) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// Clear removes the persisted credential
func (h *CredentialHandler) Clear(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
