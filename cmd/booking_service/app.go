package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"ride-booking/internal/general/config"
	"ride-booking/internal/general/jwt"
	"ride-booking/internal/general/logger"
	"ride-booking/internal/general/postgres"
	"ride-booking/internal/general/rabbitmq"
	"ride-booking/internal/general/websocket"
	"ride-booking/internal/software/booking/handler"
	"ride-booking/internal/software/booking/service"
)

// run wires the booking service and blocks until ctx is cancelled.
func run(ctx context.Context, cfgPath string, maxConcurrent int) error {
	// static request ID for startup logs
	log := logger.New("booking-service")
	ctx = log.WithRequestID(ctx, "startup-001")

	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		log.Error(ctx, "config_load_failed", "Failed to load configuration", err, nil)
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "db_connection_failed", "Failed to initialize Postgres pool", err, nil)
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Error(ctx, "db_migrate_failed", "Failed to apply migrations", err, nil)
		return err
	}

	rmq, err := rabbitmq.Connect(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "rabbitmq_connection_failed", "Failed to connect to RabbitMQ", err, nil)
		return err
	}
	defer rmq.Close()

	pub := rabbitmq.NewMQPublisher(rmq)
	jwtManager := jwt.NewManager(cfg.JWT.SecretKey, cfg.JWT.AccessTTL.Std())

	uow := postgres.NewUnitOfWork(pool)
	userRepo := postgres.NewUserRepo()
	rideRepo := postgres.NewRideRepo()
	queryRepo := postgres.NewRideQueryRepo()
	eventRepo := postgres.NewRideEventRepo()
	analyticsRepo := postgres.NewAnalyticsRepo()

	hub := websocket.NewHub(log)
	feed := websocket.NewFeed(hub, jwtManager, log)

	authSvc := service.NewAuthService(log, uow, userRepo, jwtManager)
	rideSvc := service.NewRideService(log, uow, rideRepo, queryRepo, eventRepo, pub, hub)
	analyticsSvc := service.NewAnalyticsService(log, uow, analyticsRepo)

	mux := http.NewServeMux()
	httpHandler := handler.NewBookingHTTPHandler(authSvc, rideSvc, analyticsSvc, log, jwtManager, feed, pool)
	httpHandler.RegisterRoutes(mux)

	// global in-flight request cap
	limitedHandler := withConcurrencyLimit(maxConcurrent, mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           limitedHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	log.Info(ctx, "service_started",
		fmt.Sprintf("Booking Service started on port %d", cfg.HTTP.Port),
		map[string]any{"port": cfg.HTTP.Port, "max_concurrent": maxConcurrent},
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info(ctx, "shutdown_started", "Booking Service shutting down", nil)
		if err := srv.Shutdown(shCtx); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "http_shutdown_failed", "Failed to gracefully shut down HTTP server", err, nil)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "http_server_error", "HTTP server terminated with error", err,
				map[string]any{"port": cfg.HTTP.Port})
			return err
		}
	}

	return nil
}

// withConcurrencyLimit wraps an http.Handler with a semaphore-based limiter.
// It controls how many HTTP requests can be in progress at the same time.
func withConcurrencyLimit(n int, next http.Handler) http.Handler {
	if n <= 0 {
		return next
	}
	sem := make(chan struct{}, n)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
}
