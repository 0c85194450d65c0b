package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/types"
)

// RelayHandler forwards chat-completion requests to a fixed upstream
// provider, substituting a configured fallback credential when the caller
// supplies none. The upstream status code and body pass through verbatim on
// failure; the upstream JSON body is returned on success.
type RelayHandler struct {
	upstreamURL  string
	fallbackKey  string
	defaultModel string
	client       *http.Client
}

// NewRelayHandler creates a new RelayHandler instance
func NewRelayHandler(cfg *config.Config) *RelayHandler {
	return &RelayHandler{
		upstreamURL:  cfg.RelayUpstreamURL,
		fallbackKey:  cfg.RelayAPIKey,
		defaultModel: cfg.RelayModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// RegisterRoutes registers the relay routes. Only POST is accepted; the
// router answers other methods with 405.
func (h *RelayHandler) RegisterRoutes(router *gin.RouterGroup) {
	relay := router.Group("/relay")
	{
		relay.POST("/chat", h.Chat)
	}
}

// upstreamRequest is the body forwarded to the chat-completion endpoint.
type upstreamRequest struct {
	Model          string               `json:"model"`
	Messages       []types.RelayMessage `json:"messages"`
	ResponseFormat map[string]string    `json:"response_format"`
}

// Chat forwards one chat-completion request upstream
func (h *RelayHandler) Chat(c *gin.Context) {
	var req types.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = h.defaultModel
	}

	body := upstreamRequest{
		Model:          model,
		Messages:       req.Messages,
		ResponseFormat: map[string]string{"type": "json_object"},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	upReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.upstreamURL, bytes.NewBuffer(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	upReq.Header.Set("Content-Type", "application/json")

	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		key = h.fallbackKey
	}
	if key != "" {
		upReq.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := h.client.Do(upReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[RelayHandler] upstream returned %d: %s", resp.StatusCode, string(respBody))
		c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
		return
	}

	c.Data(http.StatusOK, "application/json", respBody)
}
