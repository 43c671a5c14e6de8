package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/mpl-id/mpl-chat-service/internal/chat"
	"github.com/mpl-id/mpl-chat-service/internal/config"
	httpserver "github.com/mpl-id/mpl-chat-service/internal/http"
	"github.com/mpl-id/mpl-chat-service/internal/http/handlers"
	"github.com/mpl-id/mpl-chat-service/internal/http/middleware"
	"github.com/mpl-id/mpl-chat-service/internal/logging"
	"github.com/mpl-id/mpl-chat-service/internal/metrics"
	"github.com/mpl-id/mpl-chat-service/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	engine        *chat.Engine
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	ready         atomic.Bool
}

// New loads the dataset and wires the chat engine, HTTP server, and metrics.
// A dataset that cannot be loaded is fatal.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(ctx, cfg, logger, nil)
}

func newServerWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, provider, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = selectProvider(cfg, logger)
	}
	engine, err := buildEngine(ctx, cfg, provider, logger, recorder)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		engine:        engine,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	s.httpServer = s.buildHTTPServer()
	s.ready.Store(true)
	return s, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func (s *Server) buildHTTPServer() httpServer {
	handler := handlers.NewHandler(s.engine, s.logger,
		handlers.WithReadyFunc(s.ready.Load),
		handlers.WithMaxBodyBytes(int64(s.cfg.MaxBodyBytes)),
	)
	router := httpserver.NewRouter(handler, httpserver.StaticHandler(s.cfg.StaticDir))

	logger := s.logger
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, s.metrics, httpserver.WithCORS(s.cfg.CORSOrigins, router))

	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	s.ready.Store(false)

	timeout := shutdownTimeout
	if s.cfg.ShutdownTimeout > 0 && s.cfg.ShutdownTimeout < timeout {
		timeout = s.cfg.ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Engine exposes the chat engine.
func (s *Server) Engine() *chat.Engine {
	return s.engine
}
