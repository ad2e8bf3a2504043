package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

type callbackServer struct {
	cfg     config.ClientCallback
	server  *http.Server
	results chan CallbackResult
	logger  *logger.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewCallbackServer creates an idle callback listener for cfg. Empty fields
// of cfg fall back to config.DefaultCallbackAddress and
// config.DefaultCallbackPath.
func NewCallbackServer(cfg config.ClientCallback, log *logger.Logger) CallbackServer {
	if cfg.Address == "" {
		cfg.Address = config.DefaultCallbackAddress
	}
	if cfg.Path == "" {
		cfg.Path = config.DefaultCallbackPath
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &callbackServer{
		cfg:     cfg,
		results: make(chan CallbackResult, 1),
		logger:  log.WithComponent("callback"),
	}
	s.server = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *callbackServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Address, err)
	}
	s.listener = ln

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("callback listener started")
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Err(err).Msg("callback listener stopped")
		}
	}()
	return nil
}

func (s *callbackServer) Results() <-chan CallbackResult {
	return s.results
}

func (s *callbackServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Address
}

func (s *callbackServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.listener != nil
	s.mu.Unlock()

	if !started {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown callback listener: %w", err)
	}
	s.logger.Info().Msg("callback listener shut down gracefully")
	return nil
}

// deliver hands r to the waiting client. A result nobody has collected yet
// is replaced, so the latest browser attempt wins.
func (s *callbackServer) deliver(r CallbackResult) {
	for {
		select {
		case s.results <- r:
			return
		default:
		}

		select {
		case stale := <-s.results:
			s.logger.Debug().Bool("had_code", stale.Code != "").Msg("dropping uncollected callback result")
		default:
		}
	}
}
