package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dalarosa-be/internal/admin"
	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/cart"
	"dalarosa-be/internal/catalog"
	"dalarosa-be/internal/checkout"
	"dalarosa-be/internal/config"
	"dalarosa-be/internal/db"
	"dalarosa-be/internal/handler"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/metrics"
	"dalarosa-be/internal/middleware"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/server"
	"dalarosa-be/internal/user"
	"dalarosa-be/internal/whatsapp"

	"go.uber.org/zap"
)

const (
	cartSweepInterval = time.Minute
	shutdownTimeout   = 10 * time.Second
)

// Swapped in tests.
var (
	initDBFunc      = db.NewDatabase
	startServerFunc = listenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := initDBFunc(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	router, err := newServer(ctx, cfg, database)
	if err != nil {
		return err
	}

	addr := ":" + cfg.AppPort
	logger.L().Info("storefront listening",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(ctx, addr, router)
}

// newServer wires repositories, services and handlers into the router. The
// cart janitor and rate limiter cleanup run until ctx is done.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) (http.Handler, error) {
	profile, err := config.LoadStoreProfile(cfg.StoreProfilePath)
	if err != nil {
		return nil, err
	}
	composer, err := whatsapp.NewComposer(cfg.StoreName, cfg.WhatsAppNumber)
	if err != nil {
		return nil, err
	}

	users := user.NewService(user.NewRepository(database), cfg.JWTSecret, user.DefaultSessionTTL)
	users.OnAuthStateChange(func(event user.AuthEvent, u *user.User) {
		logger.L().Info("auth state changed",
			zap.String("event", string(event)),
			zap.String("user_id", u.ID),
		)
	})

	b := backend.NewPostgres(
		product.NewRepository(database),
		order.NewRepository(database),
		users,
	)

	carts := cart.NewRegistry(cfg.CartTTL)
	go carts.Run(ctx, cartSweepInterval)

	limiter := middleware.NewRateLimiter()
	go limiter.Run(ctx)

	h := handler.New(handler.Deps{
		Catalog:       catalog.NewService(b),
		Carts:         carts,
		Checkout:      checkout.NewFlow(b, composer, &metrics.Checkout{}),
		Admin:         admin.NewService(b),
		Backend:       b,
		Users:         users,
		Composer:      composer,
		Profile:       profile,
		SecureCookies: cfg.IsProduction(),
	})

	return setupRouter(h, cfg, limiter, b), nil
}

func setupRouter(h *handler.Handler, cfg *config.Config, limiter *middleware.RateLimiter, b backend.Backend) http.Handler {
	return server.NewRouter(h, server.Options{
		CORSOrigin: cfg.CORSOrigin,
		Limiter:    limiter,
		AdminGate:  middleware.AdminGate(b),
	})
}

// listenAndServe serves until ctx is done, then drains in-flight requests.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
