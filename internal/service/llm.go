package service

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/forkcast/backend/internal/types"
)

// GenerationService performs the schema-constrained recipe generation call
// against the Gemini API. The credential is supplied per call so that the
// store stays the single owner of the active token.
type GenerationService struct {
	model string
}

// NewGenerationService creates a new GenerationService instance using the
// given text model.
func NewGenerationService(model string) *GenerationService {
	return &GenerationService{model: model}
}

// newProviderClient builds a genai client for one call. GEMINI_BASE_URL
// redirects the client at a fake provider in tests.
func newProviderClient(ctx context.Context, token string) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  token,
		Backend: genai.BackendGeminiAPI,
	}
	if base := os.Getenv("GEMINI_BASE_URL"); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	return genai.NewClient(ctx, cc)
}

// GenerateRecipe issues the schema-constrained text request and parses the
// response body as a Recipe. Missing optional fields are left unset; a
// response missing any required field fails closed with a GenerationError.
func (s *GenerationService) GenerateRecipe(ctx context.Context, token, prompt string, schema *genai.Schema) (*types.Recipe, error) {
	client, err := newProviderClient(ctx, token)
	if err != nil {
		return nil, &GenerationError{Detail: "failed to create provider client", Err: err}
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(float32(0.9)),
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		log.Printf("[GenerationService] text call failed: %v", err)
		return nil, ClassifyProviderError(err)
	}

	raw := firstText(resp)
	if raw == "" {
		return nil, &GenerationError{Detail: "no text content in provider response"}
	}

	return parseRecipe(raw)
}

// firstText returns the concatenated text parts of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// parseRecipe decodes the provider payload optimistically and fails closed
// only on the mandatory fields.
func parseRecipe(raw string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		return nil, &GenerationError{Detail: "malformed recipe payload", Err: err}
	}

	switch {
	case strings.TrimSpace(recipe.Title) == "":
		return nil, &GenerationError{Detail: "recipe payload is missing a title"}
	case strings.TrimSpace(recipe.Summary) == "":
		return nil, &GenerationError{Detail: "recipe payload is missing a summary"}
	case len(recipe.Ingredients) == 0:
		return nil, &GenerationError{Detail: "recipe payload has no ingredients"}
	case len(recipe.Steps) == 0:
		return nil, &GenerationError{Detail: "recipe payload has no steps"}
	}

	return &recipe, nil
}
