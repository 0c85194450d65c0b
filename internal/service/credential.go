package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// credentialKey is the single named slot holding the provider token.
const credentialKey = "credential:gemini"

// Credential sources reported by Load.
const (
	CredentialSourceStored      = "stored"
	CredentialSourceEnvironment = "environment"
)

// CredentialStore resolves the provider credential from the persistent slot,
// falling back to an environment-supplied default. At most one credential is
// live at a time; there is no rotation or expiry. Token format is not
// validated here, only an actual API call can tell a bad key from a good one.
type CredentialStore struct {
	redis    *redis.Client
	fallback string
}

// NewCredentialStore creates a new CredentialStore instance. fallback may be
// empty, in which case an empty slot means the credential is absent.
func NewCredentialStore(redisClient *redis.Client, fallback string) *CredentialStore {
	return &CredentialStore{
		redis:    redisClient,
		fallback: strings.TrimSpace(fallback),
	}
}

// Load returns the active credential and its source. It prefers the
// persisted slot, then the environment fallback, then ErrCredentialAbsent.
func (s *CredentialStore) Load(ctx context.Context) (string, string, error) {
	token, err := s.redis.Get(ctx, credentialKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", "", fmt.Errorf("failed to read credential slot: %w", err)
	}
	if token != "" {
		return token, CredentialSourceStored, nil
	}
	if s.fallback != "" {
		return s.fallback, CredentialSourceEnvironment, nil
	}
	return "", "", ErrCredentialAbsent
}

// Save persists the trimmed token as the active credential. Empty or
// whitespace-only input is rejected.
func (s *CredentialStore) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyCredential
	}
	if err := s.redis.Set(ctx, credentialKey, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Subsequent loads fall back to the
// environment value if one exists.
func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, credentialKey).Err(); err != nil {
		return fmt.Errorf("failed to clear credential slot: %w", err)
	}
	return nil
}
