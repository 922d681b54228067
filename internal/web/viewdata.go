package web

import (
	"html/template"

	"github.com/commercekit/storefront/internal/commerce"
)

// Page carries the fields every template expects.
type Page struct {
	Title     string
	CartCount int
}

type SearchPage struct {
	Page

	Products         []commerce.Product
	Categories       []commerce.Category
	SortOptions      []commerce.SortOption
	SearchQuery      string
	SelectedCategory string
	SelectedSort     string
}

type ProductPage struct {
	Page

	Product     *commerce.ProductDetail
	Description template.HTML
	// SelectedValues maps variant group name to the option name picked in the
	// URL, used to highlight the active choice.
	SelectedValues map[string]string
	// VariantIDValues are "groupID,optionID" strings round-tripped through
	// hidden form inputs into the add-to-cart submission.
	VariantIDValues []string
	RedirectTo      string
}

type CartPage struct {
	Page

	Cart *commerce.Cart
}

type ErrorPage struct {
	Page

	Status  int
	Message string
}
