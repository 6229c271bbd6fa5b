package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"ebaypricing/controllers"
)

// Server owns the HTTP listener and the controller's background services
type Server struct {
	controller      *controllers.Controller
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewServer creates a new server instance
func NewServer(addr string, controller *controllers.Controller, shutdownTimeout time.Duration, logger zerolog.Logger) *Server {
	return &Server{
		controller: controller,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           controller.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully
func (s *Server) Run(ctx context.Context, enableDiscord bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.controller.StartServices(enableDiscord); err != nil {
		return err
	}
	defer func() {
		if err := s.controller.StopServices(); err != nil {
			s.logger.Error().Err(err).Msg("Error stopping services")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
