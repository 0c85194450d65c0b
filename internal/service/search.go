package service

import (
	"context"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/forkcast/backend/internal/types"
)

// SearchState tracks where a search invocation is in its lifecycle. States
// advance strictly forward within one invocation; errors exit the flow.
type SearchState string

const (
	StateValidating      SearchState = "validating"
	StateRequesting      SearchState = "requesting"
	StateTextReceived    SearchState = "text_received"
	StateImageRequesting SearchState = "image_requesting"
	StateMerged          SearchState = "merged"
)

// RecipeGenerator is the mandatory text-generation dependency.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, token, prompt string, schema *genai.Schema) (*types.Recipe, error)
}

// RecipeIllustrator is the best-effort image dependency. An empty return
// value means the image is absent.
type RecipeIllustrator interface {
	GenerateRecipeImage(ctx context.Context, token, title string) string
}

// CredentialResolver yields the active credential and its source.
type CredentialResolver interface {
	Load(ctx context.Context) (string, string, error)
}

// SearchService orchestrates one recipe search: input validation, credential
// resolution, prompt composition, the mandatory text call and the
// best-effort image call, merged into a single Recipe.
type SearchService struct {
	creds       CredentialResolver
	composer    *Composer
	generator   RecipeGenerator
	illustrator RecipeIllustrator
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(creds CredentialResolver, composer *Composer, generator RecipeGenerator, illustrator RecipeIllustrator) *SearchService {
	return &SearchService{
		creds:       creds,
		composer:    composer,
		generator:   generator,
		illustrator: illustrator,
	}
}

// Search runs the orchestration flow for one invocation. searchID is a
// caller-assigned identifier used for log correlation. The calls are issued
// sequentially: the image prompt derives from the generated title, and an
// image failure never blocks or fails the overall request.
func (s *SearchService) Search(ctx context.Context, searchID string, req *types.SearchRequest) (*types.Recipe, error) {
	state := StateValidating
	log.Printf("[SearchService] search %s: %s", searchID, state)

	if strings.TrimSpace(req.Query) == "" && strings.TrimSpace(req.Filters.MainIngredient) == "" {
		return nil, ErrValidation
	}

	// The credential is consulted before any call and can short-circuit the
	// flow by requesting configuration.
	token, source, err := s.creds.Load(ctx)
	if err != nil {
		return nil, err
	}

	state = StateRequesting
	log.Printf("[SearchService] search %s: %s (credential=%s)", searchID, state, source)

	prompt := s.composer.BuildPrompt(req.Query, req.Filters)
	recipe, err := s.generator.GenerateRecipe(ctx, token, prompt, s.composer.BuildSchema())
	if err != nil {
		return nil, err
	}

	state = StateTextReceived
	log.Printf("[SearchService] search %s: %s (%q)", searchID, state, recipe.Title)

	state = StateImageRequesting
	log.Printf("[SearchService] search %s: %s", searchID, state)
	recipe.ImageData = s.illustrator.GenerateRecipeImage(ctx, token, recipe.Title)

	state = StateMerged
	log.Printf("[SearchService] search %s: %s (image=%t)", searchID, state, recipe.HasImage())

	return recipe, nil
}
