package providers_test

import (
	"context"
	"testing"

	"github.com/commercekit/storefront/internal/commerce/chec"
	"github.com/commercekit/storefront/internal/commerce/local"
	"github.com/commercekit/storefront/internal/commerce/providers"
	"github.com/commercekit/storefront/internal/config"
	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Chec With API Key", func(t *testing.T) {
		cfg := &config.Config{
			Commerce: config.Commerce{Provider: config.ProviderChec, APIKey: "pk_test"},
		}

		provider, err := providers.New(cfg)

		require.NoError(t, err)
		assert.IsType(t, &chec.Provider{}, provider)
	})

	t.Run("Chec Without API Key Is A Configuration Error", func(t *testing.T) {
		cfg := &config.Config{
			Commerce: config.Commerce{Provider: config.ProviderChec},
		}

		provider, err := providers.New(cfg)

		require.Error(t, err)
		assert.Nil(t, provider)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeConfiguration, appErr.Code)
	})

	t.Run("Unconfigured Backend Falls Back To Stub", func(t *testing.T) {
		cfg := &config.Config{
			Commerce: config.Commerce{Provider: config.ProviderLocal},
		}

		provider, err := providers.New(cfg)

		require.NoError(t, err)
		assert.IsType(t, &local.Provider{}, provider)

		// The stub is loud about the missing backend.
		_, err = provider.GetAllCategories(context.Background())
		require.Error(t, err)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotImplemented, appErr.Code)
	})
}
