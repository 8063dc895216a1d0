package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 10
	defaultReadTimeout     = time.Second * 5
	defaultWriteTimeout    = time.Second * 5
)

var ErrNotListening = errors.New("http server is not listening")

type HTTPServer struct {
	addr            string
	server          *http.Server
	shutdownTimeout time.Duration
	onReady         func(net.Addr)

	mu       sync.Mutex
	listener net.Listener
}

type Option func(*HTTPServer)

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) {
		if timeout > 0 {
			s.server.ReadTimeout = timeout
			s.server.ReadHeaderTimeout = timeout
		}
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) {
		if timeout > 0 {
			s.server.WriteTimeout = timeout
		}
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *HTTPServer) {
		s.server.Handler = handler
	}
}

// WithReadySignal registers a callback invoked once the listening socket is bound.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *HTTPServer) {
		s.onReady = cb
	}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return nil, fmt.Errorf("http server: resolve %s: %w", addr, err)
	}
	s := &HTTPServer{
		addr:            addr,
		shutdownTimeout: defaultShutdownTimeout,
		server: &http.Server{
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ListenAndServe blocks until the server is stopped.
// A graceful stop is not reported as an error.
func (s *HTTPServer) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	if s.onReady != nil {
		s.onReady(listener.Addr())
	}

	if err = s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) ListenAddr() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil, ErrNotListening
	}
	return s.listener.Addr(), nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}
	return nil
}
