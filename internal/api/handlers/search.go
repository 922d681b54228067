package handlers

import (
	"net/http"

	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/web"
)

type SearchHandler struct {
	commerce commerce.Provider
	renderer *web.Renderer
}

func NewSearchHandler(provider commerce.Provider, renderer *web.Renderer) *SearchHandler {
	return &SearchHandler{commerce: provider, renderer: renderer}
}

// Search serves the home and search pages: the product listing filtered by
// the category, sort and q query parameters, next to the category and sort
// menus.
func (h *SearchHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := commerce.ProductFilters{
			Category:    query.Get("category"),
			SortOption:  query.Get("sort"),
			SearchQuery: query.Get("q"),
		}

		products, err := h.commerce.GetAllProducts(r.Context(), filters)
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		categories, err := h.commerce.GetAllCategories(r.Context())
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		sortOptions, err := h.commerce.GetSortOptions(r.Context())
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		h.renderer.HTML(w, http.StatusOK, "search", web.SearchPage{
			Page:             web.Page{Title: "Search"},
			Products:         products,
			Categories:       categories,
			SortOptions:      sortOptions,
			SearchQuery:      filters.SearchQuery,
			SelectedCategory: filters.Category,
			SelectedSort:     filters.SortOption,
		})
	}
}
