package handlers

import (
	"net/http"

	"github.com/commercekit/storefront/internal/commerce"
	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/commercekit/storefront/internal/session"
	"github.com/commercekit/storefront/internal/web"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	commerce  commerce.Provider
	sessions  *session.Codec
	renderer  *web.Renderer
	validator *validator.Validate
}

func NewCartHandler(provider commerce.Provider, sessions *session.Codec, renderer *web.Renderer) *CartHandler {
	return &CartHandler{
		commerce:  provider,
		sessions:  sessions,
		renderer:  renderer,
		validator: validator.New(),
	}
}

// View serves the cart page. A session without a cart id gets a fresh
// backend cart, whose id is persisted into the session cookie on the way
// out.
func (h *CartHandler) View() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.Decode(r)

		cart, err := h.commerce.GetCart(r.Context(), sess.CartID)
		if err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		if sess.CartID != cart.ID {
			sess.CartID = cart.ID
			h.sessions.Write(w, sess)
		}

		h.renderer.HTML(w, http.StatusOK, "cart", web.CartPage{
			Page: web.Page{Title: "Shopping Cart", CartCount: cart.TotalItems},
			Cart: cart,
		})
	}
}

type cartActionForm struct {
	Action    string `validate:"required"`
	ProductID string `validate:"required"`
}

// Modify handles cart form submissions. The only supported action removes a
// line item; anything else is a bad request.
func (h *CartHandler) Modify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			respondError(w, r, h.renderer, err)

			return
		}

		form := cartActionForm{
			Action:    r.PostForm.Get("action"),
			ProductID: r.PostForm.Get("productId"),
		}

		if err := h.validator.Struct(form); err != nil {
			respondError(w, r, h.renderer, appErrors.BadRequestError("missing cart action or line item").WithError(err))

			return
		}

		switch form.Action {
		case "removeFromCart":
			sess := h.sessions.Decode(r)

			_, err := h.commerce.RemoveFromCart(r.Context(), commerce.RemoveFromCartRequest{
				CartID:     sess.CartID,
				LineItemID: form.ProductID,
			})
			if err != nil {
				respondError(w, r, h.renderer, err)

				return
			}

			http.Redirect(w, r, "/cart", http.StatusSeeOther)
		default:
			respondError(w, r, h.renderer, appErrors.BadRequestError("unsupported cart action: "+form.Action))
		}
	}
}
