package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/handlers"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cache"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cart"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/health"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/metrics"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/source"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/telemetry"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/pkg/rabbitmq"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/pkg/sendgrid"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	validate := validator.New()

	// Redis is shared by the catalog cache and the coupon limiter
	var redisClient *redis.Client
	if cfg.RedisConnect.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var catalogCache cache.Cache
	var limiter repository.RateLimitRepository
	if redisClient != nil {
		catalogCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		limiter = repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	} else {
		catalogCache = cache.NewMemoryCache(cfg.Cache.DefaultTTL)
		limiter = repository.NewMemoryRateLimitRepo(&cfg.RateConfig)
	}

	defer func() {
		if err := catalogCache.Close(); err != nil {
			slog.Error("⚠️ Error closing cache", slog.String("error", err.Error()))
		}
	}()

	// Product source
	var (
		origin      source.ProductSource
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
	)

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, products, orders, err := repository.New(ctx, &cfg.Database)
		if err != nil {
			slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Database connection closed")
			}
		}()

		productRepo, orderRepo = products, orders
		origin = source.FromRepository(productRepo)
	case config.SourceREST:
		origin = source.NewRESTClient(&cfg.Source, validate)
		orderRepo = repository.NewMemoryOrderRepo()
	default:
		productRepo = repository.NewMemoryProductRepo(source.MockProducts(), source.MockCategories())
		orderRepo = repository.NewMemoryOrderRepo()
		origin = source.FromRepository(productRepo)
	}

	cachedSource := source.NewCached(origin, catalogCache, cfg.Cache.ProductsTTL, cfg.Cache.FiltersTTL)

	// Order events and confirmation email are optional
	var publisher service.OrderPublisher
	endpoints := &health.Endpoints{}
	if cfg.RabbitMQ.Enabled {
		pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.RabbitMQ.PoolSize)
		if err != nil {
			slog.Error("❌ Error connecting to rabbitmq", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		publisher = rabbitmq.NewPublisher(pool)
		endpoints.Broker = pool
	}

	var notifier service.NotificationService
	if cfg.SendGrid.Enabled {
		emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		notifier = service.NewNotificationService(emailService)
	}

	policy := cfg.Pricing.Policy()
	store := cart.NewStore(cart.WithStockLimit(!cfg.Cart.AllowOversell))

	catalogService := service.NewCatalogService(cachedSource)
	catalogHandler := handlers.NewCatalogHandler(catalogService, &cfg.Catalog)
	cartService := service.NewCartService(store, catalogService, policy, cfg.Pricing.CouponTable(), limiter)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(store, policy, orderRepo, publisher, notifier)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminService := service.NewAdminService(cachedSource, productRepo, cachedSource, validate, &cfg.Catalog)
	adminHandler := handlers.NewAdminHandler(adminService, &cfg.Catalog)

	healthChecker, err := health.NewHealthHandler(cfg, endpoints)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("source", cfg.Source.Kind),
		slog.Bool("redis", redisClient != nil),
		slog.Bool("rabbitmq", publisher != nil),
		slog.Bool("sendgrid", notifier != nil))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/featured", catalogHandler.FeaturedProducts())
	routerMux.HandleFunc("GET /api/v1/products/filters", catalogHandler.FilterOptions())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories/tree", catalogHandler.CategoryTree())

	routerMux.HandleFunc("POST /api/v1/carts", cartHandler.CreateCart())
	routerMux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/carts/{id}/items/{productId}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/items/{productId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items/{productId}/save", cartHandler.SaveForLater())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/saved/{productId}/move", cartHandler.MoveToCart())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/saved/{productId}", cartHandler.RemoveSaved())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/coupon", cartHandler.ApplyCoupon())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/coupon", cartHandler.RemoveCoupon())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/checkout", orderHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/orders/{orderNumber}", orderHandler.GetOrder())

	routerMux.HandleFunc("GET /api/v1/admin/products", adminHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/admin/products", adminHandler.CreateProduct())
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", adminHandler.UpdateProduct())
	routerMux.HandleFunc("POST /api/v1/admin/products/{id}/duplicate", adminHandler.DuplicateProduct())
	routerMux.HandleFunc("POST /api/v1/admin/products/{id}/archive", adminHandler.ArchiveProduct())
	routerMux.HandleFunc("PATCH /api/v1/admin/products/{id}/stock", adminHandler.UpdateStock())
	routerMux.HandleFunc("POST /api/v1/admin/products/bulk/price", adminHandler.BulkUpdatePrice())
	routerMux.HandleFunc("POST /api/v1/admin/products/bulk/category", adminHandler.BulkSetCategory())
	routerMux.HandleFunc("POST /api/v1/admin/products/bulk/status", adminHandler.BulkSetStatus())
	routerMux.HandleFunc("POST /api/v1/admin/products/bulk/delete", adminHandler.BulkDelete())
	routerMux.HandleFunc("GET /api/v1/admin/dashboard", adminHandler.Dashboard())

	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining, metrics innermost so the route pattern is set
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Recover(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "herbal-storefront")

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	go sweepCarts(sweepCtx, store, cfg.Cart.IdleTTL, cfg.Cart.SweepInterval)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")
	stopSweeper()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}

// sweepCarts drops carts idle for longer than ttl until ctx is cancelled.
func sweepCarts(ctx context.Context, store *cart.Store, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := store.Sweep(now.Add(-ttl)); removed > 0 {
				slog.Info("Swept idle carts", slog.Int("removed", removed))
			}
			metrics.SetActiveCarts(store.Len())
		}
	}
}
