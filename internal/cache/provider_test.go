package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/commercekit/storefront/internal/cache"
	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/commerce/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryCache is a map-backed Cache for decorator tests.
type memoryCache struct {
	entries map[string][]byte
	failing bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	if m.failing {
		return false, errors.New("cache down")
	}

	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(data, value)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if m.failing {
		return errors.New("cache down")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.entries[key] = data

	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)

	return nil
}

func TestCachingProvider_CatalogReads(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Read Served From Cache", func(t *testing.T) {
		backend := new(mocks.Provider)
		categories := []commerce.Category{{ID: "cat_1", Slug: "desks", Name: "Desks"}}
		backend.On("GetAllCategories", mock.Anything).Return(categories, nil).Once()

		provider := cache.NewCachingProvider(backend, newMemoryCache(), time.Minute)

		first, err := provider.GetAllCategories(ctx)
		require.NoError(t, err)

		second, err := provider.GetAllCategories(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		backend.AssertExpectations(t)
	})

	t.Run("Product Detail Key Includes Selections", func(t *testing.T) {
		backend := new(mocks.Provider)
		detail := &commerce.ProductDetail{ID: "prod_1", Permalink: "wireless-mouse"}

		backend.On("GetProduct", mock.Anything, "wireless-mouse", mock.Anything).Return(detail, nil).Twice()

		provider := cache.NewCachingProvider(backend, newMemoryCache(), time.Minute)

		_, err := provider.GetProduct(ctx, "wireless-mouse", nil)
		require.NoError(t, err)

		// A different selection set must not hit the cached entry.
		_, err = provider.GetProduct(ctx, "wireless-mouse", []commerce.SelectedOption{{Name: "Size", Value: "Large"}})
		require.NoError(t, err)

		backend.AssertExpectations(t)
	})

	t.Run("Cache Failure Falls Through To Backend", func(t *testing.T) {
		backend := new(mocks.Provider)
		products := []commerce.Product{{ID: "prod_1"}}
		backend.On("GetAllProducts", mock.Anything, mock.Anything).Return(products, nil).Twice()

		provider := cache.NewCachingProvider(backend, &memoryCache{failing: true}, time.Minute)

		for range 2 {
			got, err := provider.GetAllProducts(ctx, commerce.ProductFilters{})
			require.NoError(t, err)
			assert.Equal(t, products, got)
		}

		backend.AssertExpectations(t)
	})

	t.Run("Cart Operations Bypass The Cache", func(t *testing.T) {
		backend := new(mocks.Provider)
		cart := &commerce.Cart{ID: "cart_1"}
		backend.On("GetCart", mock.Anything, "cart_1").Return(cart, nil).Twice()

		provider := cache.NewCachingProvider(backend, newMemoryCache(), time.Minute)

		for range 2 {
			got, err := provider.GetCart(ctx, "cart_1")
			require.NoError(t, err)
			assert.Equal(t, "cart_1", got.ID)
		}

		backend.AssertExpectations(t)
	})
}
