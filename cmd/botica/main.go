package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/botica-real/botica/internal/app"
	"github.com/botica-real/botica/internal/auth"
	"github.com/botica-real/botica/internal/masterdata/brands"
	"github.com/botica-real/botica/internal/masterdata/categories"
	"github.com/botica-real/botica/internal/masterdata/products"
	"github.com/botica-real/botica/internal/masterdata/providers"
	"github.com/botica-real/botica/internal/observability"
	"github.com/botica-real/botica/internal/platform/cache"
	"github.com/botica-real/botica/internal/platform/db"
	"github.com/botica-real/botica/internal/sales/customers"
	"github.com/botica-real/botica/internal/sales/orders"
	"github.com/botica-real/botica/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, caches disabled", slog.Any("error", err))
		redisClient = nil
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	tokens := auth.NewTokenIssuer(cfg.AuthSecret, cfg.TokenTTL)
	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, tokens)
	authHandler := auth.NewHandler(logger, authService)

	categoryService := categories.NewService(categories.NewRepository(pool))
	brandService := brands.NewService(brands.NewRepository(pool))
	providerService := providers.NewService(providers.NewRepository(pool))

	productCache := products.NewListCache(redisClient, cfg.ProductCacheTTL)
	productService := products.NewService(
		products.NewRepository(pool),
		categoryService,
		brandService,
		providerService,
		productCache,
		logger,
	)

	customerRepo := customers.NewRepository(pool)
	customerService := customers.NewService(customerRepo)

	alerter := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr}, cfg.LowStockThreshold)
	defer func() {
		if err := alerter.Close(); err != nil {
			logger.Warn("asynq client close", slog.Any("error", err))
		}
	}()

	saleService := orders.NewService(
		orders.NewRepository(pool),
		customerRepo,
		products.NewRepository(pool),
		productCache,
		orders.NewDetailCache(redisClient, cfg.SaleCacheTTL),
		alerter,
		logger,
	)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		AuthService:       authService,
		AuthHandler:       authHandler,
		CategoriesHandler: categories.NewHandler(logger, categoryService),
		BrandsHandler:     brands.NewHandler(logger, brandService),
		ProvidersHandler:  providers.NewHandler(logger, providerService),
		ProductsHandler:   products.NewHandler(logger, productService),
		CustomersHandler:  customers.NewHandler(logger, customerService),
		SalesHandler:      orders.NewHandler(logger, saleService, metrics),
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
