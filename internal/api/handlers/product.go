package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/session"
	"github.com/commercekit/storefront/internal/web"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	commerce  commerce.Provider
	sessions  *session.Codec
	renderer  *web.Renderer
	validator *validator.Validate
}

func NewProductHandler(provider commerce.Provider, sessions *session.Codec, renderer *web.Renderer) *ProductHandler {
	return &ProductHandler{
		commerce:  provider,
		sessions:  sessions,
		renderer:  renderer,
		validator: validator.New(),
	}
}

// Detail serves the product page. Every query parameter is treated as a
// human-readable variant selection (group name = option name) and resolved
// by the provider; selections that match nothing simply do not narrow the
// variant.
func (h *ProductHandler) Detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")

		selected := parseSelectedOptions(r.URL.RawQuery)

		product, err := h.commerce.GetProduct(r.Context(), slug, selected)
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		selectedValues := make(map[string]string, len(selected))
		for _, option := range selected {
			selectedValues[option.Name] = option.Value
		}

		variantIDValues := make([]string, 0, len(product.SelectedVariantIDs))

		for _, entry := range product.SelectedVariantIDs {
			for groupID, optionID := range entry {
				variantIDValues = append(variantIDValues, groupID+","+optionID)
			}
		}

		h.renderer.HTML(w, http.StatusOK, "product", web.ProductPage{
			Page:            web.Page{Title: product.Name},
			Product:         product,
			Description:     h.renderer.TrustHTML(product.DescriptionHTML),
			SelectedValues:  selectedValues,
			VariantIDValues: variantIDValues,
			RedirectTo:      r.URL.RequestURI(),
		})
	}
}

type addToCartForm struct {
	ProductID string `validate:"required"`
}

// AddToCart handles the product page form submission. It resolves the
// session's cart (creating one on the backend when the session has none),
// persists the cart id into the session cookie, adds the product and
// redirects back.
func (h *ProductHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		slug := r.PathValue("slug")
		redirectTo := safeRedirectTarget(r.PostForm.Get("redirect"), "/product/"+url.PathEscape(slug))

		form := addToCartForm{ProductID: r.PostForm.Get("productId")}

		// A submission without a product id degrades to a plain redirect,
		// not an error page.
		if err := h.validator.Struct(form); err != nil {
			http.Redirect(w, r, redirectTo, http.StatusSeeOther)

			return
		}

		// The variant ids come back from the HTML form as "groupID,optionID"
		// strings; the provider wants a group-to-option mapping.
		variantOptions := map[string]string{}

		for _, pair := range r.PostForm["variantIds"] {
			groupID, optionID, found := strings.Cut(pair, ",")
			if found && groupID != "" {
				variantOptions[groupID] = optionID
			}
		}

		sess := h.sessions.Decode(r)

		cart, err := h.commerce.GetCart(r.Context(), sess.CartID)
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		sess.CartID = cart.ID

		_, err = h.commerce.AddToCart(r.Context(), commerce.AddToCartRequest{
			CartID:         cart.ID,
			ProductID:      form.ProductID,
			Quantity:       1,
			VariantOptions: variantOptions,
		})
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		h.sessions.Write(w, sess)
		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
	}
}

// parseSelectedOptions reads the raw query preserving parameter order, which
// url.Values would lose.
func parseSelectedOptions(rawQuery string) []commerce.SelectedOption {
	if rawQuery == "" {
		return nil
	}

	var selected []commerce.SelectedOption

	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")

		name, err := url.QueryUnescape(key)
		if err != nil || name == "" {
			continue
		}

		unescaped, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}

		selected = append(selected, commerce.SelectedOption{Name: name, Value: unescaped})
	}

	return selected
}
