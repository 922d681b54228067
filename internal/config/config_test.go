package config

import (
	"os"
	"path/filepath"
	"testing"

	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

func TestLoad_ValidFile(t *testing.T) {
	validYAML := `
env: "test"
http_server:
  address: ":8081"
commerce:
  provider: "chec"
  api_key: "pk_test_123"
  base_url: "https://api.example.test/v1"
  timeout: "15s"
session:
  secret: "super-secret"
  secure: true
redis:
  address: "localhost:6379"
cache:
  default_ttl: "10m"
`

	cfg, err := Load(createTempConfigFile(t, validYAML))

	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, ProviderChec, cfg.Commerce.Provider)
	assert.Equal(t, "pk_test_123", cfg.Commerce.APIKey)
	assert.Equal(t, "https://api.example.test/v1", cfg.Commerce.BaseURL)
	assert.Equal(t, "super-secret", cfg.Session.Secret)
	assert.True(t, cfg.Session.Secure)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_Defaults(t *testing.T) {
	minimalYAML := `
session:
  secret: "super-secret"
`

	cfg, err := Load(createTempConfigFile(t, minimalYAML))

	require.NoError(t, err)
	assert.Equal(t, ProviderLocal, cfg.Commerce.Provider)
	assert.Equal(t, "https://api.chec.io/v1", cfg.Commerce.BaseURL)
	assert.Equal(t, ":8787", cfg.Addr)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"cdn.chec.io"}, cfg.Image.AllowedHosts)
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	cfg, err := Load(createTempConfigFile(t, `env: "test"`))

	require.Error(t, err)
	assert.Nil(t, cfg)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeConfiguration, appErr.Code)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_ChecWithoutCredentialAbortsStartup(t *testing.T) {
	yaml := `
commerce:
  provider: "chec"
session:
  secret: "super-secret"
`

	cfg, err := Load(createTempConfigFile(t, yaml))

	require.Error(t, err)
	assert.Nil(t, cfg)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeConfiguration, appErr.Code)
	assert.Contains(t, err.Error(), "CHEC_PUBLIC_KEY")
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv("COMMERCE_PROVIDER", "chec")
	t.Setenv("CHEC_PUBLIC_KEY", "pk_env_123")
	t.Setenv("SESSION_SECRET", "env-secret")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ProviderChec, cfg.Commerce.Provider)
	assert.Equal(t, "pk_env_123", cfg.Commerce.APIKey)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/does/not/exist.yaml")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "does not exist")
}
