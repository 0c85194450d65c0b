package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// imageAspectRatio is the aspect-ratio hint sent with every image request.
const imageAspectRatio = "4:3"

// ImageService performs the best-effort image generation call. It never
// returns an error: a failed or empty generation yields an absent image,
// which the rest of the flow treats as a valid outcome.
type ImageService struct {
	model string
}

// NewImageService creates a new ImageService instance using the given image
// model.
func NewImageService(model string) *ImageService {
	return &ImageService{model: model}
}

// GenerateRecipeImage generates an illustrative photo for the recipe title
// and returns it as a data URI. On any failure it logs the cause and returns
// an empty string so the caller cannot accidentally propagate the failure.
func (s *ImageService) GenerateRecipeImage(ctx context.Context, token, title string) string {
	client, err := newProviderClient(ctx, token)
	if err != nil {
		log.Printf("[ImageService] failed to create provider client: %v", err)
		return ""
	}

	prompt := fmt.Sprintf("Appetizing, professional food photograph of %s, natural lighting, restaurant quality presentation", title)

	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: imageAspectRatio},
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		log.Printf("[ImageService] image generation failed for %q: %v", title, err)
		return ""
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Printf("[ImageService] no candidates in image response for %q", title)
		return ""
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(part.InlineData.Data))
	}

	log.Printf("[ImageService] no inline image data in response for %q", title)
	return ""
}
