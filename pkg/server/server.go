// Package server runs the accept loop and the per-connection
// read-decide-write-close pipeline.
package server

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/Aeron/404-container/pkg/http1"
	"github.com/Aeron/404-container/pkg/socket"
)

// Config holds server configuration.
type Config struct {
	// Addr is the TCP address to listen on (e.g. ":8080").
	// Default: ":8080"
	Addr string

	// Socket is the tuning applied to every accepted connection,
	// best-effort. Default: socket.DefaultConfig()
	Socket *socket.Config
}

// Stats represents server counters.
type Stats struct {
	// Total number of connections accepted
	TotalConnections atomic.Uint64

	// Total number of responses fully handed to the kernel
	ResponsesWritten atomic.Uint64

	// Number of failed accepts (skipped, never fatal)
	AcceptErrors atomic.Uint64

	// Number of write failures other than would-block
	WriteErrors atomic.Uint64
}

// Server answers every accepted connection with exactly one canned status
// line and closes it. Connections share no mutable state: each one is
// handled by its own goroutine against the read-only status catalog, so
// the pipeline needs no locks.
type Server struct {
	config Config
	stats  Stats

	mu       sync.Mutex // protects listener
	listener net.Listener

	shutdown atomic.Bool
	wg       sync.WaitGroup
}

// New creates a server, applying defaults for zero-valued fields.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.Socket == nil {
		config.Socket = socket.DefaultConfig()
	}

	return &Server{config: config}
}

// Stats returns the server counters.
func (s *Server) Stats() *Stats {
	return &s.stats
}

// ListenAndServe listens on the configured address and serves until the
// listener is closed.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts incoming connections on l, dispatching one goroutine per
// connection. A failed accept is counted and skipped, never fatal to the
// loop. Serve returns only once Close has been called.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()
	defer l.Close()

	for {
		if s.shutdown.Load() {
			return nil
		}

		conn, err := l.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return nil
			}
			s.stats.AcceptErrors.Add(1)
			metricAcceptError()
			continue
		}

		// Once Close has set shutdown, no new handler may start; the
		// Add happens under the same lock so Close's Wait cannot pass
		// while a just-accepted connection is still being dispatched.
		s.mu.Lock()
		if s.shutdown.Load() {
			s.mu.Unlock()
			conn.Close()
			return nil
		}
		s.wg.Add(1)
		s.mu.Unlock()

		// We do not really care whether the tuning sticks.
		_ = socket.Apply(conn, s.config.Socket)

		s.stats.TotalConnections.Add(1)
		metricConnection()

		go s.handleConn(conn)
	}
}

// Close stops accepting and waits for in-flight connections. The shipped
// binary never calls it (shutdown there is an immediate process exit);
// it exists for tests and embedders.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.shutdown.Load() {
		s.mu.Unlock()
		return nil
	}
	s.shutdown.Store(true)
	ln := s.listener
	s.mu.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}
	s.wg.Wait()

	return err
}

// handleConn runs the per-connection pipeline, each state at most once,
// nothing retried: read one line, decide, write the canned response, shut
// the connection down.
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()

	line := http1.AcquireLine()
	defer http1.ReleaseLine(line)

	// Reading. Every outcome proceeds to the decision with whatever was
	// accumulated, including nothing at all.
	http1.ReadRequestLine(conn, line)

	// Deciding.
	status := http1.Decide(line.B, http1.ParseRequestLine(line.B))

	// Writing. A would-block failure counts as best-effort delivered;
	// anything else aborts the write.
	if _, err := conn.Write(status.WireBytes()); err != nil && !isWouldBlock(err) {
		s.stats.WriteErrors.Add(1)
		metricWriteError()
	} else {
		s.stats.ResponsesWritten.Add(1)
		metricResponse(status.Code)
	}

	// Closing. Shut down both directions, best-effort, then close.
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseRead()
		_ = tc.CloseWrite()
	}
	_ = conn.Close()
}
