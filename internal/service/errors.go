package service

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var (
	// ErrValidation is returned before any network call when both the
	// free-text query and the main-ingredient filter are empty.
	ErrValidation = errors.New("a dish name or a main ingredient is required")

	// ErrCredentialAbsent means no credential is stored and no environment
	// fallback exists; the client must enter configuration.
	ErrCredentialAbsent = errors.New("no API credential configured")

	// ErrEmptyCredential rejects saving an empty or whitespace-only token.
	ErrEmptyCredential = errors.New("credential must not be empty")

	// ErrInvalidCredential means the provider rejected the credential.
	ErrInvalidCredential = errors.New("the API credential was rejected by the provider")

	// ErrRateLimited means the provider signalled a rate limit. No retry is
	// performed; the caller surfaces a retry-later message.
	ErrRateLimited = errors.New("the provider rate limit was reached")
)

// GenerationError is the catch-all failure of the mandatory text call:
// network errors, malformed responses and provider 5xx land here. Detail
// carries provider-supplied context when available.
type GenerationError struct {
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("recipe generation failed: %s", e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("recipe generation failed: %v", e.Err)
	}
	return "recipe generation failed"
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ClassifyProviderError maps a text-generation failure onto the error
// taxonomy. Authentication and authorization rejections become
// ErrInvalidCredential, rate-limit signals become ErrRateLimited and
// everything else is wrapped in a GenerationError.
func ClassifyProviderError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrInvalidCredential
		case http.StatusTooManyRequests:
			return ErrRateLimited
		}
		return &GenerationError{Detail: apiErr.Message, Err: err}
	}
	return &GenerationError{Err: err}
}
