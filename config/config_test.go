package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SERVER_PORT", "SERVER_HOST",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
		"GEMINI_API_KEY", "GEMINI_API_KEY_FILE", "GEMINI_TEXT_MODEL", "GEMINI_IMAGE_MODEL",
		"RECIPE_LANGUAGE", "RELAY_UPSTREAM_URL", "RELAY_API_KEY", "RELAY_API_KEY_FILE",
		"RELAY_MODEL", "ALLOWED_ORIGINS",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("GEMINI_API_KEY", "  env-key  ")
	t.Setenv("RELAY_UPSTREAM_URL", "https://relay.example.com/v1/chat/completions")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://app.forkcast.dev")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "redis", cfg.RedisHost)
	assert.Equal(t, "6380", cfg.RedisPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey, "fallback key should be trimmed")
	assert.Equal(t, "https://relay.example.com/v1/chat/completions", cfg.RelayUpstreamURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.forkcast.dev"}, cfg.AllowedOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.GeminiAPIKey, "no fallback credential by default")
	assert.Equal(t, DefaultTextModel, cfg.TextModel)
	assert.Equal(t, DefaultImageModel, cfg.ImageModel)
	assert.Equal(t, DefaultRecipeLanguage, cfg.RecipeLanguage)
	assert.Equal(t, DefaultRelayUpstreamURL, cfg.RelayUpstreamURL)
	assert.Equal(t, DefaultRelayModel, cfg.RelayModel)
	assert.Empty(t, cfg.RelayAPIKey)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadConfigKeyFromFile(t *testing.T) {
	clearConfigEnv(t)

	keyFile := filepath.Join(t.TempDir(), "gemini_api_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("file-key\n"), 0600))
	t.Setenv("GEMINI_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
}

func TestLoadConfigKeyFileMissing(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GEMINI_API_KEY_FILE", filepath.Join(t.TempDir(), "does-not-exist"))

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidateConfig(t *testing.T) {
	clearConfigEnv(t)

	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "bad server port", env: map[string]string{"SERVER_PORT": "http"}, field: "SERVER_PORT"},
		{name: "bad redis port", env: map[string]string{"REDIS_PORT": "none"}, field: "REDIS_PORT"},
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "two"}, field: "REDIS_DB"},
		{name: "relative relay url", env: map[string]string{"RELAY_UPSTREAM_URL": "/v1/chat"}, field: "RELAY_UPSTREAM_URL"},
		{name: "bad relay scheme", env: map[string]string{"RELAY_UPSTREAM_URL": "ftp://relay.example.com"}, field: "RELAY_UPSTREAM_URL"},
		{name: "empty text model", env: map[string]string{"GEMINI_TEXT_MODEL": " "}, field: "GEMINI_TEXT_MODEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	os.Unsetenv("CI")

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.True(t, IsTest())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
