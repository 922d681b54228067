package providers

import (
	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/commerce/chec"
	"github.com/commercekit/storefront/internal/commerce/local"
	"github.com/commercekit/storefront/internal/config"
	appErrors "github.com/commercekit/storefront/internal/errors"
)

// New selects the commerce provider once at startup. The hosted backend
// requires its API key; its absence is a configuration error, not a runtime
// failure, because no page can be served without it. Any other configuration
// falls back to the local stub.
func New(cfg *config.Config) (commerce.Provider, error) {
	if cfg.Commerce.Provider == config.ProviderChec {
		if cfg.Commerce.APIKey == "" {
			return nil, appErrors.ConfigurationError("the commerce API key must be provided as CHEC_PUBLIC_KEY when COMMERCE_PROVIDER is chec")
		}

		return chec.NewProvider(cfg.Commerce), nil
	}

	return local.NewProvider(), nil
}
