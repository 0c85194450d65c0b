package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Redis configuration (credential slot + in-flight search guard)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Generation provider configuration
	GeminiAPIKey   string // environment fallback credential, may be empty
	TextModel      string
	ImageModel     string
	RecipeLanguage string

	// Relay configuration
	RelayUpstreamURL string
	RelayAPIKey      string // fallback credential for callers that supply none
	RelayModel       string

	// CORS configuration
	AllowedOrigins []string
}

// Defaults applied when the corresponding variable is unset.
const (
	DefaultTextModel        = "gemini-2.5-flash"
	DefaultImageModel       = "gemini-2.5-flash-image"
	DefaultRecipeLanguage   = "English"
	DefaultRelayUpstreamURL = "https://api.deepseek.com/v1/chat/completions"
	DefaultRelayModel       = "deepseek-chat"
)

// LoadConfig creates a new Config instance from environment variables.
// Secret-bearing values also accept a *_FILE variant pointing at a file
// whose trimmed contents become the value.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisURL:  os.Getenv("REDIS_URL"),

		TextModel:      getEnv("GEMINI_TEXT_MODEL", DefaultTextModel),
		ImageModel:     getEnv("GEMINI_IMAGE_MODEL", DefaultImageModel),
		RecipeLanguage: getEnv("RECIPE_LANGUAGE", DefaultRecipeLanguage),

		RelayUpstreamURL: getEnv("RELAY_UPSTREAM_URL", DefaultRelayUpstreamURL),
		RelayModel:       getEnv("RELAY_MODEL", DefaultRelayModel),
	}

	var err error
	if cfg.RedisPassword, err = getSecret("REDIS_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.GeminiAPIKey, err = getSecret("GEMINI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.RelayAPIKey, err = getSecret("RELAY_API_KEY"); err != nil {
		return nil, err
	}

	cfg.RedisDB = 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable or the fallback.
func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// getSecret resolves NAME or, when unset, reads the file named by NAME_FILE.
// An empty result is not an error; absence of a credential is a valid state.
func getSecret(name string) (string, error) {
	if v := os.Getenv(name); v != "" {
		return strings.TrimSpace(v), nil
	}

	file := os.Getenv(name + "_FILE")
	if file == "" {
		return "", nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s_FILE: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}
