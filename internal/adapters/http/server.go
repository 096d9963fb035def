package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/storesync/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the sync API and shuts down gracefully.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu    sync.Mutex
	bound net.Addr
	ready chan struct{}
}

// NewServer creates a server for handler with the limits from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start listens on the configured address and serves until Shutdown. It
// returns nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		close(s.ready)
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.bound = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("sync API listening", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Ready is closed once the server has a listener, or failed to get one.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown waits for in-flight requests until ctx ends. Without a deadline
// on ctx it waits at most ten seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("draining sync API")
	return s.srv.Shutdown(ctx)
}

// Addr returns the bound address once serving, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != nil {
		return s.bound.String()
	}
	return s.srv.Addr
}
