package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/commercekit/storefront/internal/api/middleware"
	"github.com/commercekit/storefront/internal/cache"
	"github.com/commercekit/storefront/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ImageHandler proxies product images from an allow-listed set of remote
// hosts so the browser only ever talks to this origin. Fetched bytes are
// cached when a cache is configured.
type ImageHandler struct {
	cfg        *config.Image
	cache      cache.Cache
	httpClient *http.Client
	allowed    map[string]struct{}
}

type cachedImage struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// NewImageHandler builds the proxy. imageCache may be nil; the handler then
// fetches on every request.
func NewImageHandler(cfg *config.Image, imageCache cache.Cache) *ImageHandler {
	allowed := make(map[string]struct{}, len(cfg.AllowedHosts))
	for _, host := range cfg.AllowedHosts {
		allowed[host] = struct{}{}
	}

	return &ImageHandler{
		cfg:   cfg,
		cache: imageCache,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		allowed: allowed,
	}
}

func (h *ImageHandler) Proxy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		src := r.URL.Query().Get("src")
		if src == "" {
			http.Error(w, "src query parameter is required", http.StatusBadRequest)

			return
		}

		srcURL, err := url.Parse(src)
		if err != nil || (srcURL.Scheme != "http" && srcURL.Scheme != "https") {
			http.Error(w, "invalid image source", http.StatusBadRequest)

			return
		}

		if _, ok := h.allowed[srcURL.Host]; !ok {
			http.Error(w, "domain not allowed", http.StatusForbidden)

			return
		}

		cacheKey := "image:" + src

		if h.cache != nil {
			var img cachedImage

			hit, err := h.cache.Get(r.Context(), cacheKey, &img)
			if err != nil {
				logger.Warn("image cache lookup failed", slog.String("error", err.Error()))
			} else if hit {
				serveImage(w, img)

				return
			}
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, src, nil)
		if err != nil {
			http.Error(w, "invalid image source", http.StatusBadRequest)

			return
		}

		res, err := h.httpClient.Do(req)
		if err != nil {
			logger.Error("image fetch failed", slog.String("src", src), slog.String("error", err.Error()))
			http.Error(w, "failed to fetch image", http.StatusBadGateway)

			return
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			http.Error(w, "failed to fetch image", http.StatusBadGateway)

			return
		}

		body, err := io.ReadAll(io.LimitReader(res.Body, h.cfg.MaxBytes+1))
		if err != nil {
			http.Error(w, "failed to read image", http.StatusBadGateway)

			return
		}

		if int64(len(body)) > h.cfg.MaxBytes {
			http.Error(w, "image too large", http.StatusBadGateway)

			return
		}

		img := cachedImage{
			ContentType: res.Header.Get("Content-Type"),
			Body:        body,
		}

		if h.cache != nil {
			if err := h.cache.Set(r.Context(), cacheKey, img, h.cfg.CacheTTL); err != nil {
				logger.Warn("image cache store failed", slog.String("error", err.Error()))
			}
		}

		serveImage(w, img)
	}
}

func serveImage(w http.ResponseWriter, img cachedImage) {
	if img.ContentType != "" {
		w.Header().Set("Content-Type", img.ContentType)
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(img.Body)
}
