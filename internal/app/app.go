package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/buildline/crm-backend/internal/adapter/cache"
	"github.com/buildline/crm-backend/internal/adapter/postgres"
	appointmentrepo "github.com/buildline/crm-backend/internal/adapter/postgres/appointment"
	assetrepo "github.com/buildline/crm-backend/internal/adapter/postgres/asset"
	auditrepo "github.com/buildline/crm-backend/internal/adapter/postgres/audit"
	customerrepo "github.com/buildline/crm-backend/internal/adapter/postgres/customer"
	documentrepo "github.com/buildline/crm-backend/internal/adapter/postgres/document"
	employeerepo "github.com/buildline/crm-backend/internal/adapter/postgres/employee"
	leadrepo "github.com/buildline/crm-backend/internal/adapter/postgres/lead"
	userrepo "github.com/buildline/crm-backend/internal/adapter/postgres/user"
	"github.com/buildline/crm-backend/internal/adapter/storage"
	"github.com/buildline/crm-backend/internal/auth"
	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/service/appointment"
	"github.com/buildline/crm-backend/internal/service/asset"
	authsvc "github.com/buildline/crm-backend/internal/service/auth"
	"github.com/buildline/crm-backend/internal/service/customer"
	"github.com/buildline/crm-backend/internal/service/document"
	"github.com/buildline/crm-backend/internal/service/employee"
	"github.com/buildline/crm-backend/internal/service/lead"
	"github.com/buildline/crm-backend/internal/service/report"
	"github.com/buildline/crm-backend/internal/transport/middleware"
	"github.com/buildline/crm-backend/internal/transport/rest"
	"github.com/buildline/crm-backend/migrations"
)

// cacheBackend is the cache as seen by the application: the service-facing
// JSON operations plus lifecycle hooks.
type cacheBackend interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Run is the application entry point. It connects to PostgreSQL, Redis and
// blob storage, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	store, err := newCache(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	blobs, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authn, err := auth.NewAuthenticator(cfg.Auth, jwt)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	// ---------------------------------------------------------------------------
	// Repositories & services
	// ---------------------------------------------------------------------------

	tx := postgres.NewTxManager(pool)
	audit := auditrepo.New(pool)
	users := userrepo.New(pool)
	leads := leadrepo.New(pool)
	customers := customerrepo.New(pool)
	appointments := appointmentrepo.New(pool)
	assets := assetrepo.New(pool)
	employees := employeerepo.New(pool)
	documents := documentrepo.New(pool)

	authService := authsvc.NewService(logger, users, jwt, cfg.Auth)
	leadService := lead.NewService(logger, leads, customers, audit, tx, store, cfg.Leads, cfg.Reports.CacheTTL)
	customerService := customer.NewService(logger, customers, audit, tx, store)
	appointmentService := appointment.NewService(logger, appointments, audit, tx, store)
	assetService := asset.NewService(logger, assets, audit, tx, store)
	employeeService := employee.NewService(logger, employees, audit, tx, store)
	documentService := document.NewService(logger, documents, blobs, audit, tx, store, cfg.Storage.MaxUploadSize)
	reportService := report.NewService(logger, report.Sources{
		Customers:    customers,
		Leads:        leads,
		Appointments: appointments,
		Assets:       assets,
		Employees:    employees,
		Documents:    documents,
	}, store, cfg.Reports)

	// ---------------------------------------------------------------------------
	// HTTP
	// ---------------------------------------------------------------------------

	var optional map[string]rest.Pinger
	if cfg.Redis.Addr != "" {
		optional = map[string]rest.Pinger{"cache": store}
	}

	var limiter *middleware.RateLimiter
	if !cfg.RateLimit.Disabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion(), optional),
		Auth:         rest.NewAuthHandler(authService, logger),
		Leads:        rest.NewLeadHandler(leadService, logger),
		Customers:    rest.NewCustomerHandler(customerService, logger),
		Appointments: rest.NewAppointmentHandler(appointmentService, logger),
		Assets:       rest.NewAssetHandler(assetService, logger),
		Employees:    rest.NewEmployeeHandler(employeeService, logger),
		Documents:    rest.NewDocumentHandler(documentService, cfg.Storage.MaxUploadSize, logger),
		Reports:      rest.NewReportHandler(reportService, logger),
	}, rest.RouterConfig{
		Logger:    logger,
		Authn:     authn,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

func newCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (cacheBackend, error) {
	if cfg.Addr == "" {
		logger.Info("redis not configured, caching disabled")
		return cache.Nop{}, nil
	}
	r, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}
	logger.Info("redis connected", slog.String("addr", cfg.Addr))
	return r, nil
}
