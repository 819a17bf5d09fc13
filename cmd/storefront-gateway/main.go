package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/headless-commerce/storefront-gateway/internal/api/handlers"
	"github.com/headless-commerce/storefront-gateway/internal/api/middleware"
	"github.com/headless-commerce/storefront-gateway/internal/cache"
	"github.com/headless-commerce/storefront-gateway/internal/config"
	"github.com/headless-commerce/storefront-gateway/internal/health"
	"github.com/headless-commerce/storefront-gateway/internal/metrics"
	service "github.com/headless-commerce/storefront-gateway/internal/services"
	"github.com/headless-commerce/storefront-gateway/internal/staleness"
	"github.com/headless-commerce/storefront-gateway/internal/tracing"
	"github.com/headless-commerce/storefront-gateway/internal/woocommerce"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Optional .env for local development
	_ = godotenv.Load()

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Init(context.Background(), &cfg.Tracing)
	if err != nil {
		slog.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup. An unreachable cache is not fatal: every read path
	// degrades to the upstream, and /api/health reports the outage.
	redisOpts, err := redis.ParseURL(cfg.RedisConnect.URL)
	if err != nil {
		slog.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis is unreachable at startup, continuing without cache", slog.String("error", err.Error()))
	} else {
		slog.Info("Connected to Redis")
	}
	cancelPing()

	cacheClient := cache.NewRedisCache(redisClient)

	defer func() {
		if err := cacheClient.Close(); err != nil {
			slog.Error("Error closing Redis connection", slog.String("error", err.Error()))
		}
	}()

	// Upstream client and services
	wcClient := woocommerce.NewClient(&cfg.WooCommerce)
	catalogService := service.NewCatalogService(wcClient, cacheClient, &cfg.Cache)
	cartService := service.NewCartService(wcClient)

	cartHandler := handlers.NewCartHandler(cartService, cfg.IsProduction())
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	revalidateHandler := handlers.NewRevalidateHandler(cfg.WooCommerce.WebhookSecret, cacheClient, staleness.NewRedisMarker(redisClient))
	healthHandler := handlers.NewHealthHandler(cacheClient, wcClient)

	statusHandler, err := health.NewStatusHandler(cfg, wcClient)
	if err != nil {
		slog.Error("Failed to create status handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	originGuard := middleware.NewOriginGuard(cfg.SiteURL)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/wc/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/wc/cart/add", cartHandler.AddItem())
	routerMux.HandleFunc("POST /api/wc/cart/update", cartHandler.UpdateItem())
	routerMux.HandleFunc("POST /api/wc/checkout", cartHandler.Checkout())
	routerMux.HandleFunc("GET /api/wc/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/wc/products/{slug}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/wc/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("POST /api/revalidate", revalidateHandler.Handle())
	routerMux.HandleFunc("GET /api/health", healthHandler.Health())
	routerMux.Handle("GET /status", statusHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = originGuard.Guard(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront-gateway")

	// Setup http server
	server := http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.HTTPServer.Addr), slog.String("env", cfg.Env))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received, stopping the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
