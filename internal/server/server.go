package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/internal/kernel"
	"github.com/shashiranjanraj/shopadmin/pkg/cache"
	"github.com/shashiranjanraj/shopadmin/pkg/database"
	"github.com/shashiranjanraj/shopadmin/pkg/grpc"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
	"github.com/shashiranjanraj/shopadmin/pkg/orm"
	"github.com/shashiranjanraj/shopadmin/pkg/storage"
)

const shutdownTimeout = 15 * time.Second

// Start boots every backing service, serves HTTP and gRPC, and blocks until
// SIGINT or SIGTERM, then drains both servers.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close()

	if err := orm.Instrument(database.DB); err != nil {
		return err
	}

	// Reports are served uncached when Redis is down.
	if err := cache.Connect(ctx); err != nil {
		logger.Warn("cache: redis unavailable, report caching disabled", "error", err)
	}
	defer cache.Close()

	if err := storage.Connect(ctx); err != nil {
		return err
	}

	httpKernel, err := kernel.NewHTTPKernel(database.DB)
	if err != nil {
		return err
	}

	grpcSrv, err := grpc.Start(config.GRPCPort(), database.Ping)
	if err != nil {
		return err
	}
	defer grpc.Stop(grpcSrv)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http: shutdown: %w", err)
	}
	return nil
}
