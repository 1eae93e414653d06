package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "restaurant/internal/app"
	"restaurant/internal/handlers/rest/admin_login_post"
	"restaurant/internal/handlers/rest/admin_logout_post"
	"restaurant/internal/handlers/rest/buffet_packages_get"
	"restaurant/internal/handlers/rest/checkout_post"
	"restaurant/internal/handlers/rest/healthcheck_head"
	"restaurant/internal/handlers/rest/menu_delete"
	"restaurant/internal/handlers/rest/menu_get"
	"restaurant/internal/handlers/rest/menu_post"
	"restaurant/internal/handlers/rest/menu_put"
	"restaurant/internal/handlers/rest/order_delete"
	"restaurant/internal/handlers/rest/order_status_put"
	"restaurant/internal/handlers/rest/orders_export_get"
	"restaurant/internal/handlers/rest/orders_get"
	"restaurant/internal/handlers/rest/ping_get"
	"restaurant/internal/handlers/rest/reservation_post"
	"restaurant/internal/handlers/rest/track_get"
	"restaurant/internal/handlers/rest/track_stream_get"
	"restaurant/internal/pkg/config"
	"restaurant/internal/pkg/dotenv"
	"restaurant/internal/pkg/kafka"
	metrics_system "restaurant/internal/pkg/metrics"
	"restaurant/internal/pkg/middlewares/admin_auth"
	"restaurant/internal/pkg/middlewares/graceful_shutdown"
	"restaurant/internal/pkg/middlewares/metrics"
	"restaurant/internal/pkg/middlewares/rate_limiter"
	"restaurant/internal/pkg/middlewares/timeout"
	"restaurant/internal/pkg/postgres"
	"restaurant/pkg/logger"
	"restaurant/pkg/logger/zap_adapter"
	"restaurant/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting restaurant-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0, // SSE tracking stream writes for the lifetime of the request
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/api/menu", menu_get.New(log, app.ServiceMenu)).Methods("GET")
	router.Handle("/api/checkout", checkout_post.New(log, app.ServiceOrder, app.Composer)).Methods("POST")
	router.Handle("/api/track", track_get.New(log, app.ServiceTracking)).Methods("GET")
	router.Handle("/api/track/stream", track_stream_get.New(log, app.ServiceTracking)).Methods("GET")

	router.Handle("/api/buffet/packages", buffet_packages_get.New(log, app.ServiceReservation)).Methods("GET")
	router.Handle("/api/reservations", reservation_post.New(log, app.ServiceReservation, app.Composer)).Methods("POST")

	router.Handle("/api/admin/login", admin_login_post.New(log, app.ServiceAuth)).Methods("POST")

	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(admin_auth.Middleware(log, app.ServiceAuth))

	admin.Handle("/logout", admin_logout_post.New(log, app.ServiceAuth)).Methods("POST")

	admin.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	admin.Handle("/orders/export", orders_export_get.New(log, app.ServiceOrder)).Methods("GET")
	admin.Handle("/orders/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	admin.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	admin.Handle("/menu", menu_post.New(log, app.ServiceMenu)).Methods("POST")
	admin.Handle("/menu/{id}", menu_put.New(log, app.ServiceMenu)).Methods("PUT")
	admin.Handle("/menu/{id}", menu_delete.New(log, app.ServiceMenu)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
