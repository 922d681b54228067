package local_test

import (
	"context"
	"testing"

	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/commerce/local"
	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryOperationIsNotImplemented(t *testing.T) {
	ctx := context.Background()
	provider := local.NewProvider()

	calls := map[string]func() error{
		"GetCart": func() error {
			_, err := provider.GetCart(ctx, "cart_1")

			return err
		},
		"GetAllProducts": func() error {
			_, err := provider.GetAllProducts(ctx, commerce.ProductFilters{})

			return err
		},
		"GetProduct": func() error {
			_, err := provider.GetProduct(ctx, "wireless-mouse", nil)

			return err
		},
		"GetAllCategories": func() error {
			_, err := provider.GetAllCategories(ctx)

			return err
		},
		"GetSortOptions": func() error {
			_, err := provider.GetSortOptions(ctx)

			return err
		},
		"AddToCart": func() error {
			_, err := provider.AddToCart(ctx, commerce.AddToCartRequest{CartID: "cart_1", ProductID: "prod_1"})

			return err
		},
		"RemoveFromCart": func() error {
			_, err := provider.RemoveFromCart(ctx, commerce.RemoveFromCartRequest{CartID: "cart_1", LineItemID: "item_1"})

			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()

			require.Error(t, err)

			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrCodeNotImplemented, appErr.Code)
			assert.Contains(t, err.Error(), "not yet implemented")
		})
	}
}
