//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/recipe-cost-service/config"
	"github.com/guttosm/recipe-cost-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func integrationConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Auth: config.AuthConfig{
			Enabled:        false,
			JWTSecretKey:   "integration-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
		Database: config.DatabaseConfig{
			URI:                            testutil.GetSharedContainerURI(),
			DatabaseName:                   testutil.SanitizeDBName(t.Name()),
			LogsTTL:                        30 * 24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
	}
}

func TestInitializeApp_Integration(t *testing.T) {
	router, cleanup, err := InitializeApp(integrationConfig(t))
	require.NoError(t, err)
	require.NotNil(t, router)
	require.NotNil(t, cleanup)
	defer cleanup()

	t.Run("liveness", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness sees a healthy database", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("catalog routes are registered", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestInitializeApp_BadDatabaseURI(t *testing.T) {
	cfg := integrationConfig(t)
	cfg.Database.URI = "mongodb://127.0.0.1:1"

	router, cleanup, err := InitializeApp(cfg)
	assert.Error(t, err)
	assert.Nil(t, router)
	assert.Nil(t, cleanup)
}
