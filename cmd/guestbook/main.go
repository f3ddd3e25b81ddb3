package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/Guestbook/internal/auth"
	"github.com/Totarae/Guestbook/internal/config"
	"github.com/Totarae/Guestbook/internal/database"
	"github.com/Totarae/Guestbook/internal/grpc/health"
	"github.com/Totarae/Guestbook/internal/handlers"
	"github.com/Totarae/Guestbook/internal/repositories"
	"github.com/Totarae/Guestbook/internal/router"
	"github.com/Totarae/Guestbook/internal/service"
	"github.com/Totarae/Guestbook/internal/storage"
	"go.uber.org/zap"
)

const healthInterval = 15 * time.Second

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Некорректная конфигурация", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Сервер остановлен с ошибкой", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	if cfg.AdminSecret == "" {
		logger.Warn("ADMIN_SECRET is empty, admin endpoint rejects every request")
	}

	svc := service.NewGuestbookService(repo, auth.New(cfg.AdminSecret), logger)
	handler := handlers.NewHandler(svc, logger)

	// gRPC слушатель открывается первым: при ошибке HTTP сервер ещё не запущен
	var grpcLis net.Listener
	if cfg.GRPCAddress != "" {
		grpcLis, err = net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return fmt.Errorf("listen grpc: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.NewRouter(handler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 2)
	go func() {
		logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress), zap.String("mode", cfg.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("http server: %w", err)
		}
	}()

	var healthSrv *health.Server
	if grpcLis != nil {
		healthSrv = health.NewServer(repo, logger, healthInterval)
		go func() {
			logger.Info("gRPC health сервер запущен", zap.String("address", cfg.GRPCAddress))
			if err := healthSrv.Serve(grpcLis); err != nil {
				errs <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Получен сигнал остановки")
	case runErr = <-errs:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if healthSrv != nil {
		healthSrv.Stop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки HTTP сервера", zap.Error(err))
	}
	return runErr
}

// openStorage открывает единственное подключение к хранилищу для выбранного режима.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.GuestbookRepository, func(), error) {
	switch cfg.Mode {
	case config.ModePostgres:
		db, err := database.NewDB(ctx, cfg.DatabaseURL, cfg.DatabaseAuthToken, logger)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresRepository(db), db.Close, nil
	case config.ModeSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath(), logger)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLiteRepository(db), db.Close, nil
	case config.ModeMemory:
		logger.Warn("DATABASE_URL is empty, entries are kept in memory")
		return storage.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database url: %s", cfg.RedactedDatabaseURL())
	}
}
