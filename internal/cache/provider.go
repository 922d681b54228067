package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/commercekit/storefront/internal/commerce"
)

// CachingProvider decorates a commerce.Provider with read-through caching of
// the catalog operations. Cart operations are never cached; the backend owns
// cart state and every mutation must see it fresh.
type CachingProvider struct {
	commerce.Provider

	cache Cache
	ttl   time.Duration
}

var _ commerce.Provider = (*CachingProvider)(nil)

func NewCachingProvider(next commerce.Provider, cache Cache, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		Provider: next,
		cache:    cache,
		ttl:      ttl,
	}
}

func (p *CachingProvider) GetAllProducts(ctx context.Context, filters commerce.ProductFilters) ([]commerce.Product, error) {
	key := strings.Join([]string{"catalog:products", filters.Category, filters.SortOption, filters.SearchQuery}, ":")

	var products []commerce.Product
	if hit := p.lookup(ctx, key, &products); hit {
		return products, nil
	}

	products, err := p.Provider.GetAllProducts(ctx, filters)
	if err != nil {
		return nil, err
	}

	p.store(ctx, key, products)

	return products, nil
}

func (p *CachingProvider) GetProduct(ctx context.Context, productID string, selected []commerce.SelectedOption) (*commerce.ProductDetail, error) {
	parts := []string{"catalog:product", productID}
	for _, s := range selected {
		parts = append(parts, s.Name+"="+s.Value)
	}

	key := strings.Join(parts, ":")

	var detail commerce.ProductDetail
	if hit := p.lookup(ctx, key, &detail); hit {
		return &detail, nil
	}

	result, err := p.Provider.GetProduct(ctx, productID, selected)
	if err != nil {
		return nil, err
	}

	p.store(ctx, key, result)

	return result, nil
}

func (p *CachingProvider) GetAllCategories(ctx context.Context) ([]commerce.Category, error) {
	const key = "catalog:categories"

	var categories []commerce.Category
	if hit := p.lookup(ctx, key, &categories); hit {
		return categories, nil
	}

	categories, err := p.Provider.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	p.store(ctx, key, categories)

	return categories, nil
}

// lookup treats cache failures as misses; the backend remains the source of
// truth and a broken cache must not take the storefront down.
func (p *CachingProvider) lookup(ctx context.Context, key string, value any) bool {
	hit, err := p.cache.Get(ctx, key, value)
	if err != nil {
		slog.Warn("catalog cache lookup failed", slog.String("key", key), slog.String("error", err.Error()))

		return false
	}

	return hit
}

func (p *CachingProvider) store(ctx context.Context, key string, value any) {
	if err := p.cache.Set(ctx, key, value, p.ttl); err != nil {
		slog.Warn("catalog cache store failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
