package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CATALOG_BASE_URL", "http://catalog.local:8000")
	t.Setenv("CATALOG_API_KEY", "secret-key")
	t.Setenv("JWT_SECRET", "signing-secret")
}

func TestLoad_FromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "http://catalog.local:8000", cfg.CatalogBaseURL)
	assert.Equal(t, "secret-key", cfg.CatalogAPIKey)
	assert.Equal(t, "signing-secret", cfg.JWTSecret)
	assert.Equal(t, ":8081", cfg.ListenAddr)
	assert.Equal(t, "sales.db", cfg.DBPath)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/other.db")

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []string{"CATALOG_BASE_URL", "CATALOG_API_KEY", "JWT_SECRET"}

	for _, missing := range tests {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := Load(t.TempDir())

			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}
