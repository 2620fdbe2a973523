// Package taskpay собирает приложение: хранилище, кеш, платёжный шлюз,
// сервисы и HTTP-сервер с жизненным циклом.
package taskpay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/taskpay/internal/cache"
	"github.com/magabrotheeeer/taskpay/internal/config"
	jwtlib "github.com/magabrotheeeer/taskpay/internal/lib/jwt"
	"github.com/magabrotheeeer/taskpay/internal/metrics"
	"github.com/magabrotheeeer/taskpay/internal/paymentprovider"
	paymentservice "github.com/magabrotheeeer/taskpay/internal/services/payment"
	taskservice "github.com/magabrotheeeer/taskpay/internal/services/task"
	userservice "github.com/magabrotheeeer/taskpay/internal/services/user"
	"github.com/magabrotheeeer/taskpay/internal/storage"
)

// App инкапсулирует HTTP-сервер и внешние подключения приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New создаёт все зависимости приложения и регистрирует маршруты.
// Зависимости конструируются один раз и передаются явно, без глобальных
// привязок: это единственное место, где компоненты связываются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.StorageConn.URI, cfg.StorageConn.Database)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	verifier := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	gatewayClient := paymentprovider.NewClient(cfg.PaymentGateway.KeyID, cfg.PaymentGateway.KeySecret, cfg.PaymentGateway.APIURL)

	taskService := taskservice.New(db, logger)
	userService := userservice.New(db, cacheRedis, logger)
	paymentService := paymentservice.New(gatewayClient, db, cacheRedis, cfg.PaymentGateway.KeySecret, logger)

	metrics.MustRegister()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, verifier, taskService, userService, paymentService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if dberr := a.db.Close(timeoutCtx); dberr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", dberr))
		}
		return err
	}
}
