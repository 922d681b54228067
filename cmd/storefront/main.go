package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/commercekit/storefront/internal/api/handlers"
	"github.com/commercekit/storefront/internal/api/middleware"
	"github.com/commercekit/storefront/internal/cache"
	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/commerce/providers"
	"github.com/commercekit/storefront/internal/config"
	"github.com/commercekit/storefront/internal/health"
	"github.com/commercekit/storefront/internal/metrics"
	"github.com/commercekit/storefront/internal/session"
	"github.com/commercekit/storefront/internal/telemetry"
	"github.com/commercekit/storefront/internal/web"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Optional .env for local development
	_ = godotenv.Load()

	// Load config; missing required values abort startup here
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		slog.Error("failed to set up telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Commerce provider selection, fixed for the life of the process
	provider, err := providers.New(cfg)
	if err != nil {
		slog.Error("failed to select commerce provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optional redis-backed catalog and image cache
	var imageCache cache.Cache

	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			slog.Error("failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
		imageCache = redisCache
		provider = commerce.Provider(cache.NewCachingProvider(provider, redisCache, cfg.Cache.DefaultTTL))
	}

	sessions, err := session.NewCodec(cfg.Session.Secret, cfg.Session.Secure)
	if err != nil {
		slog.Error("failed to initialize session codec", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("failed to initialize renderer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	searchHandler := handlers.NewSearchHandler(provider, renderer)
	productHandler := handlers.NewProductHandler(provider, sessions, renderer)
	cartHandler := handlers.NewCartHandler(provider, sessions, renderer)
	imageHandler := handlers.NewImageHandler(&cfg.Image, imageCache)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("failed to initialize health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("provider", cfg.Commerce.Provider),
		slog.Bool("cache", cfg.Redis.Enabled()),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /{$}", searchHandler.Search())
	routerMux.HandleFunc("GET /search", searchHandler.Search())
	routerMux.HandleFunc("GET /product/{slug}", productHandler.Detail())
	routerMux.HandleFunc("POST /product/{slug}", productHandler.AddToCart())
	routerMux.HandleFunc("GET /cart", cartHandler.View())
	routerMux.HandleFunc("POST /cart", cartHandler.Modify())
	routerMux.HandleFunc("GET /api/image", imageHandler.Proxy())
	routerMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("shutdown signal received, stopping the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("server shut down gracefully")
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		slog.Error("telemetry shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
