package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/handler"
	"github.com/MKhiriev/go-square/internal/logger"
)

// defaultShutdownTimeout is used when the config has no request timeout.
const defaultShutdownTimeout = 30 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	stop            chan struct{}
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.RequestTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: shutdownTimeout,
		stop:            make(chan struct{}),
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Shutdown asks a running server to stop. Calling it more than once is a
// no-op.
func (s *server) Shutdown() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErr := make(chan error, 1)
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	case <-s.stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.httpServer.Shutdown(shutdownCtx)

	if err := <-serveErr; err != nil {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
