package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/service"
	"github.com/forkcast/backend/internal/types"
)

type mockCredentials struct {
	token   string
	source  string
	loadErr error
	saveErr error
	saved   string
	cleared bool
}

func (m *mockCredentials) Load(ctx context.Context) (string, string, error) {
	if m.loadErr != nil {
		return "", "", m.loadErr
	}
	return m.token, m.source, nil
}

func (m *mockCredentials) Save(ctx context.Context, token string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = token
	return nil
}

func (m *mockCredentials) Clear(ctx context.Context) error {
	m.cleared = true
	return nil
}

func setupCredentialRouter(store CredentialManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	NewCredentialHandler(store).RegisterRoutes(v1)
	return router
}

func TestCredentialStatusConfigured(t *testing.T) {
	router := setupCredentialRouter(&mockCredentials{
		token:  "sk-secret",
		source: service.CredentialSourceStored,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credential", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.CredentialStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Configured)
	assert.Equal(t, service.CredentialSourceStored, resp.Source)
	assert.NotContains(t, w.Body.String(), "sk-secret", "status must never echo the token")
}

func TestCredentialStatusAbsent(t *testing.T) {
	router := setupCredentialRouter(&mockCredentials{loadErr: service.ErrCredentialAbsent})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credential", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.CredentialStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Configured)
}

func TestCredentialSave(t *testing.T) {
	store := &mockCredentials{}
	router := setupCredentialRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/credential", strings.NewReader(`{"token":"sk-new"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sk-new", store.saved)
}

func TestCredentialSaveRejectsBlankToken(t *testing.T) {
	store := &mockCredentials{saveErr: service.ErrEmptyCredential}
	router := setupCredentialRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/credential", strings.NewReader(`{"token":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCredentialSaveRejectsMissingToken(t *testing.T) {
	store := &mockCredentials{}
	router := setupCredentialRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/credential", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.saved)
}

func TestCredentialClear(t *testing.T) {
	store := &mockCredentials{}
	router := setupCredentialRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/credential", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.cleared)
}
