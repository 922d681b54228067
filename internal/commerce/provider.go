package commerce

import "context"

// ProductFilters narrows GetAllProducts. Zero values impose no constraint.
type ProductFilters struct {
	// Category is a category slug.
	Category string
	// SortOption is a composite "<field>-<direction>" key from GetSortOptions.
	SortOption string
	// SearchQuery is a free-text query.
	SearchQuery string
}

type AddToCartRequest struct {
	CartID    string
	ProductID string
	// Quantity of zero or less is treated as 1.
	Quantity int
	// VariantOptions maps variant group id to option id. It is forwarded to
	// the backend verbatim.
	VariantOptions map[string]string
}

type RemoveFromCartRequest struct {
	CartID     string
	LineItemID string
}

// Provider is the capability contract between the route handlers and a
// concrete commerce backend. Exactly two implementations exist: the hosted
// REST backend (chec) and the local stub. The selected instance is immutable
// for the life of the process and safe for concurrent use.
type Provider interface {
	// GetCart fetches the cart with the given id. An empty id asks the
	// backend for a fresh anonymous cart; the caller is responsible for
	// persisting the returned id into the session.
	GetCart(ctx context.Context, cartID string) (*Cart, error)

	// GetAllProducts lists products matching the filters. A query that
	// matches nothing returns an empty slice, not an error.
	GetAllProducts(ctx context.Context, filters ProductFilters) ([]Product, error)

	// GetProduct fetches a product by permalink and resolves the supplied
	// human-readable variant selections against the product's own variant
	// groups. Selections that match nothing are silently dropped.
	GetProduct(ctx context.Context, productID string, selected []SelectedOption) (*ProductDetail, error)

	// GetAllCategories returns the backend's categories as a flat list.
	GetAllCategories(ctx context.Context) ([]Category, error)

	// GetSortOptions enumerates the supported sort keys. It never calls the
	// backend.
	GetSortOptions(ctx context.Context) ([]SortOption, error)

	// AddToCart adds a product to the cart and returns the updated cart.
	AddToCart(ctx context.Context, req AddToCartRequest) (*Cart, error)

	// RemoveFromCart deletes a line item from the cart and returns the
	// updated cart.
	RemoveFromCart(ctx context.Context, req RemoveFromCartRequest) (*Cart, error)
}
