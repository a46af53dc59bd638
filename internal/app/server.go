// Package app wires configuration, the customer source and the HTTP layer
// into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/customers-service/internal/config"
	"github.com/maxviazov/customers-service/internal/handler"
	"github.com/maxviazov/customers-service/internal/repository"
	"github.com/maxviazov/customers-service/internal/service"
)

const idleTimeout = 60 * time.Second

type Server struct {
	cfg    *config.Config
	log    zerolog.Logger
	source repository.Source
	http   *http.Server
}

// NewServer builds the router and the http.Server; nothing listens until Run.
func NewServer(cfg *config.Config, logger zerolog.Logger, source repository.Source) *Server {
	return &Server{
		cfg:    cfg,
		log:    logger.With().Str("module", "server").Logger(),
		source: source,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.App.Port),
			Handler:      NewRouter(cfg.App.Env, logger, source),
			ReadTimeout:  cfg.App.ReadTimeout,
			WriteTimeout: cfg.App.WriteTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}

// NewRouter returns the gin engine with middleware and every route mounted.
func NewRouter(env string, logger zerolog.Logger, source repository.Source) *gin.Engine {
	gin.SetMode(ginMode(env))
	r := gin.New()
	r.Use(handler.RequestID(), handler.AccessLog(logger), handler.Recovery(logger))

	svc := service.NewCustomerService(source, logger)
	handler.Register(r, source, svc)
	return r
}

func ginMode(env string) string {
	switch env {
	case "prod", "staging":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("http server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.App.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.log.Info().Msg("http server stopped gracefully")
	return nil
}

// WatchReload refreshes reloadable sources on SIGHUP until ctx ends.
// Sources without reload support ignore the signal.
func WatchReload(ctx context.Context, source repository.Source, logger zerolog.Logger) {
	r, ok := source.(Reloader)
	if !ok {
		return
	}
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			reload(ctx, r, logger)
		}
	}
}

func reload(ctx context.Context, r Reloader, logger zerolog.Logger) {
	n, err := r.Reload(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("reload failed, keeping previous snapshot")
		return
	}
	logger.Info().Int("customers", n).Msg("customer snapshot reloaded")
}
