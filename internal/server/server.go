package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suar-net/suar-dash/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Hooks run around shutdown. Drain hooks run while the server still accepts
// requests, Close hooks after it has stopped.
type Hooks struct {
	Drain []func()
	Close []func()
}

// Run serves handler on the configured port until SIGINT or SIGTERM.
func Run(cfg config.ServerConfig, handler http.Handler, logger *log.Logger, hooks Hooks) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Fatalf("Cannot run server on port %s: %v", cfg.Port, err)
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	if err := Serve(ctx, server, ln, logger, hooks); err != nil {
		logger.Fatal(err)
	}
}

// Serve runs server on ln until ctx is done, then drains, shuts the server
// down gracefully and closes.
func Serve(ctx context.Context, server *http.Server, ln net.Listener, logger *log.Logger, hooks Hooks) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Server starting on %s", ln.Addr())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Println("Shut down the server...")

	// Background work may still call back into this server.
	for _, fn := range hooks.Drain {
		fn()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("Server shutdown failed: %v", err)
	}
	for _, fn := range hooks.Close {
		fn()
	}
	logger.Println("Server successfully shut down")
	return nil
}
