package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/commercekit/storefront/internal/api/middleware"
	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/commercekit/storefront/internal/web"
)

// respondError renders the error page for a failed provider call. Not-found
// and not-implemented keep their own message; anything else collapses into a
// generic failure so backend details never reach the browser.
func respondError(w http.ResponseWriter, r *http.Request, renderer *web.Renderer, err error) {
	logger := middleware.LoggerFromContext(r.Context())

	status := http.StatusInternalServerError
	message := "An unexpected error occurred."

	if appErr, ok := appErrors.IsAppError(err); ok {
		switch appErr.Code {
		case appErrors.ErrCodeNotFound:
			status = http.StatusNotFound
			message = "Product not found"
		case appErrors.ErrCodeNotImplemented:
			status = http.StatusNotImplemented
			message = "This store has no commerce backend configured."
		case appErrors.ErrCodeBackend:
			status = http.StatusBadGateway
			message = "The store is temporarily unavailable. Please try again."
		case appErrors.ErrCodeBadRequest:
			status = http.StatusBadRequest
			message = "Bad Request"
		}
	}

	logger.Error("request failed",
		slog.Int("http_status", status),
		slog.String("error", err.Error()),
	)

	renderer.HTML(w, status, "error", web.ErrorPage{
		Page:    web.Page{Title: "Error"},
		Status:  status,
		Message: message,
	})
}

// safeRedirectTarget keeps redirects on this origin; anything else falls back
// to the given default.
func safeRedirectTarget(target, fallback string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}

	return fallback
}
