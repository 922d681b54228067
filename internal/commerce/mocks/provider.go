package mocks

import (
	"context"

	"github.com/commercekit/storefront/internal/commerce"
	"github.com/stretchr/testify/mock"
)

// Provider is a testify mock of commerce.Provider.
type Provider struct {
	mock.Mock
}

var _ commerce.Provider = (*Provider)(nil)

func (m *Provider) GetCart(ctx context.Context, cartID string) (*commerce.Cart, error) {
	args := m.Called(ctx, cartID)

	var cart *commerce.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*commerce.Cart)
	}

	return cart, args.Error(1)
}

func (m *Provider) GetAllProducts(ctx context.Context, filters commerce.ProductFilters) ([]commerce.Product, error) {
	args := m.Called(ctx, filters)

	var products []commerce.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]commerce.Product)
	}

	return products, args.Error(1)
}

func (m *Provider) GetProduct(ctx context.Context, productID string, selected []commerce.SelectedOption) (*commerce.ProductDetail, error) {
	args := m.Called(ctx, productID, selected)

	var detail *commerce.ProductDetail
	if args.Get(0) != nil {
		detail = args.Get(0).(*commerce.ProductDetail)
	}

	return detail, args.Error(1)
}

func (m *Provider) GetAllCategories(ctx context.Context) ([]commerce.Category, error) {
	args := m.Called(ctx)

	var categories []commerce.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]commerce.Category)
	}

	return categories, args.Error(1)
}

func (m *Provider) GetSortOptions(ctx context.Context) ([]commerce.SortOption, error) {
	args := m.Called(ctx)

	var options []commerce.SortOption
	if args.Get(0) != nil {
		options = args.Get(0).([]commerce.SortOption)
	}

	return options, args.Error(1)
}

func (m *Provider) AddToCart(ctx context.Context, req commerce.AddToCartRequest) (*commerce.Cart, error) {
	args := m.Called(ctx, req)

	var cart *commerce.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*commerce.Cart)
	}

	return cart, args.Error(1)
}

func (m *Provider) RemoveFromCart(ctx context.Context, req commerce.RemoveFromCartRequest) (*commerce.Cart, error) {
	args := m.Called(ctx, req)

	var cart *commerce.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*commerce.Cart)
	}

	return cart, args.Error(1)
}
