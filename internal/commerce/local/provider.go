package local

import (
	"context"

	"github.com/commercekit/storefront/internal/commerce"
	appErrors "github.com/commercekit/storefront/internal/errors"
)

// Provider is a placeholder for a self-hosted commerce backend. Every
// operation fails with a not-implemented error so that running without a
// configured backend is loud instead of silently returning empty data.
type Provider struct{}

var _ commerce.Provider = (*Provider)(nil)

func NewProvider() *Provider {
	return &Provider{}
}

func errNotImplemented(operation string) error {
	return appErrors.NotImplementedError("local commerce provider: " + operation + " is not yet implemented")
}

func (p *Provider) GetCart(_ context.Context, _ string) (*commerce.Cart, error) {
	return nil, errNotImplemented("GetCart")
}

func (p *Provider) GetAllProducts(_ context.Context, _ commerce.ProductFilters) ([]commerce.Product, error) {
	return nil, errNotImplemented("GetAllProducts")
}

func (p *Provider) GetProduct(_ context.Context, _ string, _ []commerce.SelectedOption) (*commerce.ProductDetail, error) {
	return nil, errNotImplemented("GetProduct")
}

func (p *Provider) GetAllCategories(_ context.Context) ([]commerce.Category, error) {
	return nil, errNotImplemented("GetAllCategories")
}

func (p *Provider) GetSortOptions(_ context.Context) ([]commerce.SortOption, error) {
	return nil, errNotImplemented("GetSortOptions")
}

func (p *Provider) AddToCart(_ context.Context, _ commerce.AddToCartRequest) (*commerce.Cart, error) {
	return nil, errNotImplemented("AddToCart")
}

func (p *Provider) RemoveFromCart(_ context.Context, _ commerce.RemoveFromCartRequest) (*commerce.Cart, error) {
	return nil, errNotImplemented("RemoveFromCart")
}
