package chec

import (
	"context"
	"net/url"
	"strings"

	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/config"
	appErrors "github.com/commercekit/storefront/internal/errors"
)

// Provider implements commerce.Provider against the hosted commerce REST API.
type Provider struct {
	api *apiClient
}

var _ commerce.Provider = (*Provider)(nil)

func NewProvider(cfg config.Commerce) *Provider {
	return &Provider{api: newAPIClient(cfg)}
}

func (p *Provider) GetCart(ctx context.Context, cartID string) (*commerce.Cart, error) {
	path := "/carts"
	if cartID != "" {
		path += "/" + url.PathEscape(cartID)
	}

	var cart commerce.Cart
	if err := p.api.get(ctx, path, nil, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (p *Provider) GetAllProducts(ctx context.Context, filters commerce.ProductFilters) ([]commerce.Product, error) {
	sortBy, sortDirection := splitSortOption(filters.SortOption)

	var collection commerce.ProductCollection

	err := p.api.get(ctx, "/products", map[string]string{
		"category_slug": filters.Category,
		"sortBy":        sortBy,
		"sortDirection": sortDirection,
		"query":         filters.SearchQuery,
	}, &collection)
	if err != nil {
		return nil, err
	}

	if collection.Data == nil {
		return []commerce.Product{}, nil
	}

	return collection.Data, nil
}

func (p *Provider) GetProduct(ctx context.Context, productID string, selected []commerce.SelectedOption) (*commerce.ProductDetail, error) {
	var product commerce.Product

	// The permalink is the stable external identifier; the backend accepts it
	// in place of the internal id when told so.
	err := p.api.get(ctx, "/products/"+url.PathEscape(productID), map[string]string{
		"type": "permalink",
	}, &product)
	if err != nil {
		return nil, err
	}

	// A product payload without an id is the backend's way of signaling that
	// nothing matched.
	if product.ID == "" {
		return nil, appErrors.NotFoundError("product not found")
	}

	selectedVariantIDs := resolveVariantSelections(product.VariantGroups, selected)

	return shapeProductDetail(&product, selectedVariantIDs), nil
}

func (p *Provider) GetAllCategories(ctx context.Context) ([]commerce.Category, error) {
	var collection commerce.CategoryCollection

	if err := p.api.get(ctx, "/categories", nil, &collection); err != nil {
		return nil, err
	}

	if collection.Data == nil {
		return []commerce.Category{}, nil
	}

	return collection.Data, nil
}

func (p *Provider) GetSortOptions(_ context.Context) ([]commerce.SortOption, error) {
	return []commerce.SortOption{
		{Key: "price-desc", Name: "Price: High to low"},
		{Key: "price-asc", Name: "Price: Low to high"},
	}, nil
}

func (p *Provider) AddToCart(ctx context.Context, req commerce.AddToCartRequest) (*commerce.Cart, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	body := struct {
		ID       string            `json:"id"`
		Quantity int               `json:"quantity"`
		Options  map[string]string `json:"options,omitempty"`
	}{
		ID:       req.ProductID,
		Quantity: quantity,
		Options:  req.VariantOptions,
	}

	var cart commerce.Cart
	if err := p.api.post(ctx, "/carts/"+url.PathEscape(req.CartID), body, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (p *Provider) RemoveFromCart(ctx context.Context, req commerce.RemoveFromCartRequest) (*commerce.Cart, error) {
	path := "/carts/" + url.PathEscape(req.CartID) + "/items/" + url.PathEscape(req.LineItemID)

	var cart commerce.Cart
	if err := p.api.delete(ctx, path, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

// splitSortOption splits a composite "<field>-<direction>" key on the first
// dash. A key without a dash yields an empty direction.
func splitSortOption(sortOption string) (field, direction string) {
	if sortOption == "" {
		return "", ""
	}

	field, direction, _ = strings.Cut(sortOption, "-")

	return field, direction
}
