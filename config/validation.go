package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable. Credential
// values are deliberately not validated here; an absent key only matters
// once a generation call is attempted.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.ServerPort)}
	}

	if cfg.RedisHost == "" {
		return ValidationError{Field: "REDIS_HOST", Message: "must not be empty"}
	}
	if _, err := strconv.Atoi(cfg.RedisPort); err != nil {
		return ValidationError{Field: "REDIS_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.RedisPort)}
	}

	if strings.TrimSpace(cfg.TextModel) == "" {
		return ValidationError{Field: "GEMINI_TEXT_MODEL", Message: "must not be empty"}
	}
	if strings.TrimSpace(cfg.ImageModel) == "" {
		return ValidationError{Field: "GEMINI_IMAGE_MODEL", Message: "must not be empty"}
	}
	if strings.TrimSpace(cfg.RecipeLanguage) == "" {
		return ValidationError{Field: "RECIPE_LANGUAGE", Message: "must not be empty"}
	}

	u, err := url.Parse(cfg.RelayUpstreamURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "RELAY_UPSTREAM_URL", Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.RelayUpstreamURL)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "RELAY_UPSTREAM_URL", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}

	if len(cfg.AllowedOrigins) == 0 {
		return ValidationError{Field: "ALLOWED_ORIGINS", Message: "must list at least one origin"}
	}

	return nil
}
