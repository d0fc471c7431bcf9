// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	portal "github.com/servitech/parts-portal"
	"github.com/servitech/parts-portal/internal/adapters/catalogue"
	"github.com/servitech/parts-portal/internal/adapters/db"
	"github.com/servitech/parts-portal/internal/adapters/mailer"
	redis_a "github.com/servitech/parts-portal/internal/adapters/redis_adapter"
	"github.com/servitech/parts-portal/internal/adapters/storage"
	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/services"
	"github.com/servitech/parts-portal/internal/handlers"
	"github.com/servitech/parts-portal/internal/handlers/middleware"
	"github.com/servitech/parts-portal/internal/pkg/config"
	"github.com/servitech/parts-portal/internal/pkg/logger"
	"github.com/servitech/parts-portal/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting parts portal",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	if cfg.AWS.SecretsName != "" {
		sm, err := config.NewAWSSecretsManager(cfg.AWS.Region, cfg.AWS.SecretsName, slogger)
		if err != nil {
			slogger.Error("failed to initialize secrets manager", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := cfg.ApplySecrets(ctx, sm, slogger); err != nil {
			slogger.Error("failed to apply secrets", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := cfg.Validate(); err != nil {
		slogger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runMigrations(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database         *db.Database
	redisClient      *redis.Client
	asynqClient      *asynq.Client
	asynqInspector   *asynq.Inspector
	sessions         *redis_a.SessionStore
	catalogue        *domain.Catalogue
	catalogueHandler *handlers.CatalogueHandler
	basketHandler    *handlers.BasketHandler
	orderHandler     *handlers.OrderHandler
	stocktakeHandler *handlers.StocktakeHandler
	leaderHandler    *handlers.LeaderHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.sessions = redis_a.NewSessionStore(redisClient, cfg.Redis.SessionTTL, slogger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	slogger.Info("loading part catalogue", slog.String("path", cfg.Catalogue.CSVPath))

	cat, err := catalogue.NewLoader(slogger).LoadFile(cfg.Catalogue.CSVPath, cfg.Catalogue.HiddenParts)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	deps.catalogue = cat
	slogger.Info("catalogue loaded", slog.Int("parts", cat.Len()))

	images, err := storage.NewImageStore(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		KeyPrefix:       cfg.AWS.S3KeyPrefix,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}

	smtpMailer := mailer.New(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     strconv.Itoa(cfg.Mail.Port),
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		DryRun:   cfg.Mail.DryRun,
	}, slogger)

	// Repositories and services
	orderRepo := db.NewOrderRepository(database, slogger)
	dispatchRepo := db.NewDispatchRepository(database, slogger)
	stocktakeRepo := db.NewStocktakeRepository(database, slogger)
	enqueuer := workers.NewEnqueuer(deps.asynqClient, slogger)

	orderService := services.NewOrderService(orderRepo, dispatchRepo, deps.sessions, smtpMailer, cat, services.OrdersConfig{
		PartsMailbox:    cfg.Mail.PartsMailbox,
		ReagentsMailbox: cfg.Mail.ReagentsMailbox,
	}, slogger)
	stocktakeService := services.NewStocktakeService(stocktakeRepo, enqueuer, cat, services.StocktakeConfig{
		LeaderMailbox: cfg.Mail.LeaderMailbox,
	}, slogger)

	// Handlers
	deps.catalogueHandler = handlers.NewCatalogueHandler(cat, images, cfg.Catalogue.ImageExpiry, slogger)
	deps.basketHandler = handlers.NewBasketHandler(deps.sessions, cat, slogger)
	deps.orderHandler = handlers.NewOrderHandler(orderService, slogger)
	deps.stocktakeHandler = handlers.NewStocktakeHandler(stocktakeService, slogger)
	deps.leaderHandler = handlers.NewLeaderHandler(stocktakeService, deps.sessions, cfg.Leader.Secret, slogger)
	deps.exportHandler = handlers.NewExportHandler(stocktakeService, slogger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, slogger)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, deps, slogger)

	// Middleware chain, innermost first
	var handler http.Handler = mux
	handler = middleware.Session(handler)
	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}
	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}
	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	handler = middleware.Recovery(slogger)(handler)
	handler = middleware.Logger(logger.NewLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
	}))(handler)
	handler = middleware.RequestID(handler)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, slogger *slog.Logger) {
	apiV1 := "/api/v1"

	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Catalogue
	mux.HandleFunc("GET "+apiV1+"/catalogue", deps.catalogueHandler.ListParts)
	mux.HandleFunc("GET "+apiV1+"/reagents", deps.catalogueHandler.ListReagents)
	mux.HandleFunc("GET "+apiV1+"/parts/{part}/image", deps.catalogueHandler.PartImage)

	// Basket
	mux.HandleFunc("GET "+apiV1+"/basket", deps.basketHandler.GetBasket)
	mux.HandleFunc("POST "+apiV1+"/basket/add", deps.basketHandler.AddItem)
	mux.HandleFunc("POST "+apiV1+"/basket/quantity", deps.basketHandler.SetQuantity)
	mux.HandleFunc("POST "+apiV1+"/basket/remove", deps.basketHandler.RemoveItem)
	mux.HandleFunc("POST "+apiV1+"/basket/clear", deps.basketHandler.Clear)

	// Orders
	mux.HandleFunc("POST "+apiV1+"/orders/submit", deps.orderHandler.SubmitOrder)
	mux.HandleFunc("GET "+apiV1+"/orders/recent", deps.orderHandler.RecentOrders)
	mux.HandleFunc("POST "+apiV1+"/orders/resubmit", deps.orderHandler.Resubmit)
	mux.HandleFunc("POST "+apiV1+"/orders/copy-to-basket", deps.orderHandler.CopyToBasket)
	mux.HandleFunc("GET "+apiV1+"/my-orders", deps.orderHandler.MyOrders)

	// Stocktake
	mux.HandleFunc("POST "+apiV1+"/stocktake/open", deps.stocktakeHandler.Open)
	mux.HandleFunc("POST "+apiV1+"/stocktake/items", deps.stocktakeHandler.SetItem)
	mux.HandleFunc("POST "+apiV1+"/stocktake/submit", deps.stocktakeHandler.Submit)

	// Leader area; everything but login/logout sits behind the guard
	mux.HandleFunc("POST "+apiV1+"/leader/login", deps.leaderHandler.Login)
	mux.HandleFunc("POST "+apiV1+"/leader/logout", deps.leaderHandler.Logout)

	guard := middleware.RequireLeader(deps.sessions, slogger)
	mux.Handle("GET "+apiV1+"/leader/stocktakes", guard(http.HandlerFunc(deps.leaderHandler.ListStocktakes)))
	mux.Handle("POST "+apiV1+"/leader/stocktakes/{id}/unlock", guard(http.HandlerFunc(deps.leaderHandler.Unlock)))
	mux.Handle("POST "+apiV1+"/leader/stocktakes/{id}/reset", guard(http.HandlerFunc(deps.leaderHandler.Reset)))
	mux.Handle("GET "+apiV1+"/leader/export/totals.csv", guard(http.HandlerFunc(deps.exportHandler.TotalsCSV)))
	mux.Handle("GET "+apiV1+"/leader/export/totals.xlsx", guard(http.HandlerFunc(deps.exportHandler.TotalsXLSX)))
	mux.Handle("GET "+apiV1+"/leader/export/all.csv", guard(http.HandlerFunc(deps.exportHandler.AllCSV)))
	mux.Handle("GET "+apiV1+"/leader/export/engineer.csv", guard(http.HandlerFunc(deps.exportHandler.EngineerCSV)))
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL:    cfg.GetDatabaseURL(),
		EmbeddedSource: portal.MigrationsFS,
		TableName:      "schema_migrations",
		SchemaName:     "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3)
}
