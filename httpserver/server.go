// Package httpserver implements PicoFramework's HTTP server: an accept
// loop over a bounded per-connection worker pool, a connection state
// machine, and optional TLS, dispatching to an httprouter.Router.
// Grounded on modules/httpserver/module.go (Go service shape, config
// section, TLS wiring) and original_source's http/HttpServer.h
// (accept-loop/worker-pool/timeout semantics).
package httpserver

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/archbell/picoframework"
	"github.com/archbell/picoframework/httprouter"
	"github.com/archbell/picoframework/httpx"
)

// ConnState names a connection's position in its request lifecycle.
type ConnState int

const (
	StateReadingHeaders ConnState = iota
	StateReadingBody
	StateDispatched
	StateResponding
	StateClosing
)

// Server owns a listening socket and dispatches each accepted
// connection's one request to router.
type Server struct {
	cfg    Config
	router *httprouter.Router
	logger pico.Logger

	mu       sync.Mutex
	listener net.Listener
	pool     *pool
	wg       sync.WaitGroup
	started  bool
}

// New creates a Server bound to router; call Start to begin accepting
// connections.
func New(cfg Config, router *httprouter.Router, logger pico.Logger) *Server {
	return &Server{cfg: cfg, router: router, logger: logger, pool: newPool(cfg.MaxConnections)}
}

// Start binds the listener and launches the accept loop in a goroutine.
// It returns once the listener is bound, not once the loop exits.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	if s.router == nil {
		return ErrNoHandler
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("httpserver: listen %s: %w", addr, err)
	}
	if s.cfg.TLS != nil && s.cfg.TLS.Enabled {
		if s.cfg.TLS.CertFile == "" || s.cfg.TLS.KeyFile == "" {
			ln.Close()
			return ErrTLSMisconfigured
		}
		cert, err := tls.LoadX509KeyPair(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		if err != nil {
			ln.Close()
			return fmt.Errorf("httpserver: load TLS keypair: %w", err)
		}
		ln = tls.NewListener(ln, &tls.Config{Certificates: []tls.Certificate{cert}})
	}

	s.listener = ln
	s.started = true
	s.logger.Info("http server listening", "addr", addr, "tls", s.cfg.TLS != nil && s.cfg.TLS.Enabled)

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and waits (up to ShutdownTimeout) for
// in-flight connections to finish.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.started = false
	ln := s.listener
	s.mu.Unlock()

	if ln != nil {
		ln.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("accept failed", "error", err)
			continue
		}
		if !s.pool.tryAcquire() {
			s.logger.Warn("connection refused: worker pool exhausted", "remote", conn.RemoteAddr())
			conn.Close()
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.pool.release()
			s.handleConnection(conn)
		}()
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	// StateReadingHeaders / StateReadingBody: httpx.ReadRequest reads
	// both off the wire in one call, respecting MaxHttpBody.
	if s.cfg.ReceiveTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReceiveTimeout))
	}
	reader := bufio.NewReader(conn)
	req, err := httpx.ReadRequest(reader)

	res := httpx.NewResponse(conn)
	switch {
	case errors.Is(err, httpx.ErrPayloadTooLarge):
		res.SendError(413, "payload too large")
		return
	case err != nil:
		res.SendError(400, "bad request")
		return
	}

	// StateDispatched -> StateResponding
	s.dispatch(req, res)

	// StateClosing: no keep-alive, every connection serves one request.
	// The deferred Close runs right after this deadline is set, so the
	// deadline does not delay or bound the close.
	if s.cfg.IdleTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.IdleTimeout))
	}
}

func (s *Server) dispatch(req *httpx.Request, res *httpx.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panicked", "error", fmt.Sprint(r), "path", req.Path)
			res.SendError(500, "internal server error")
		}
	}()

	if matched := s.router.HandleRequest(req, res); !matched {
		res.SendError(404, "not found")
	}
}
