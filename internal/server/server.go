package server

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/muldrow/ledpanel/internal/grid"
	"github.com/muldrow/ledpanel/internal/logging"
	"github.com/muldrow/ledpanel/internal/render"
)

// Config holds the control listener configuration.
type Config struct {
	// Listen is the TCP listen address, e.g. ":80".
	Listen string
	// ReadTimeout bounds how long an accepted client may stay silent
	// before the connection is dropped.
	ReadTimeout time.Duration
	// Color is the RGB value rendered for lit cells.
	Color render.Color
	// Addr is embedded in the control page as the device address.
	Addr string
}

// Server owns the control listener. Clients are handled strictly one
// at a time: further connection attempts queue in the kernel backlog
// until the current request completes.
type Server struct {
	config   *Config
	grid     *grid.Grid
	driver   render.Driver
	router   *Router
	listener net.Listener
}

// New creates a server around an existing grid and display driver.
func New(config *Config, g *grid.Grid, d render.Driver) *Server {
	addr := config.Addr
	return &Server{
		config: config,
		grid:   g,
		driver: d,
		router: NewRouter(g, d, config.Color, func() string { return addr }),
	}
}

// Start listens and serves until SIGINT/SIGTERM or a listener error.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Listen, err)
	}
	s.listener = listener

	logging.Info("Control server listening",
		zap.String("addr", listener.Addr().String()),
		zap.Duration("read_timeout", s.config.ReadTimeout),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.acceptLoop()
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown()
	case err := <-errChan:
		return err
	}
}

// acceptLoop accepts and serves one client at a time.
func (s *Server) acceptLoop() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if isClosedErr(err) {
				return nil
			}
			logging.Error("Failed to accept connection", zap.Error(err))
			continue
		}
		s.handleConnection(conn)
	}
}

// handleConnection reads the request line, dispatches it, writes the
// response, and unconditionally closes the connection. Every request
// is non-persistent.
func (s *Server) handleConnection(conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	defer func() {
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "connection_closed")
	}()

	logging.LogConnection(remoteAddr, "connection_accepted")

	// A silent client is dropped at the deadline instead of stalling
	// the whole loop.
	if s.config.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	}

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		logging.Warn("Failed to read request line",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
		return
	}
	logging.LogRawBytes("request line", []byte(line))

	// The remainder of the request (headers, body) is ignored.

	if req, perr := ParseRequestLine(line); perr == nil {
		logging.LogRequest(remoteAddr, req.Method, req.Path)
	}

	if err := s.router.Route(line, conn); err != nil {
		logging.Error("Failed to write response",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
	}
}

// Shutdown closes the listener and the display driver.
func (s *Server) Shutdown() error {
	logging.Info("Shutting down server...")
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			logging.Error("Error closing listener", zap.Error(err))
		}
	}
	if err := s.driver.Close(); err != nil {
		logging.Error("Error closing display driver", zap.Error(err))
	}
	logging.Sync()
	return nil
}

func isClosedErr(err error) bool {
	if opErr, ok := err.(*net.OpError); ok {
		return strings.Contains(opErr.Err.Error(), "use of closed network connection")
	}
	return false
}
