package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// start запускает HTTP сервер и блокируется до его остановки
func (a *App) start() error {
	router := newRouter(a.handler, a.authService, a.logger)

	server := &http.Server{
		Addr:    a.config.RunAddress.String(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", zap.String("address", a.config.RunAddress.String()))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		a.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Server shutdown failed", zap.Error(err))
			return err
		}
	}

	return nil
}
