// Package socket applies best-effort tuning to accepted connections.
package socket

import (
	"net"
	"syscall"
)

// Config represents socket tuning options. Zero values mean "use system
// defaults".
type Config struct {
	// TCP_NODELAY - disable Nagle's algorithm for low latency.
	// Recommended for single-response connections: the status line goes
	// out in one segment instead of waiting on the ACK clock.
	NoDelay bool

	// SO_RCVBUF - receive buffer size in bytes.
	// Default: 0 (use system default)
	RecvBuffer int

	// SO_SNDBUF - send buffer size in bytes.
	// Default: 0 (use system default)
	SendBuffer int

	// SO_KEEPALIVE - enable TCP keepalive probes.
	// Default: false (connections live for one response only)
	KeepAlive bool
}

// DefaultConfig returns the options applied to every accepted connection.
func DefaultConfig() *Config {
	return &Config{
		NoDelay: true,
	}
}

// Apply applies cfg to conn. Non-TCP connections are left untouched.
// Everything is best-effort: a TCP_NODELAY failure is reported to the
// caller, the remaining options fail silently.
//
// This should be called immediately after accepting a connection.
func Apply(conn net.Conn, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}

	rawConn, err := tcpConn.SyscallConn()
	if err != nil {
		return err
	}

	var lastErr error

	ctrlErr := rawConn.Control(func(fd uintptr) {
		if cfg.NoDelay {
			if err := syscall.SetsockoptInt(int(fd), syscall.IPPROTO_TCP, syscall.TCP_NODELAY, 1); err != nil {
				lastErr = err
			}
		}

		if cfg.RecvBuffer > 0 {
			_ = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_RCVBUF, cfg.RecvBuffer)
		}

		if cfg.SendBuffer > 0 {
			_ = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_SNDBUF, cfg.SendBuffer)
		}

		if cfg.KeepAlive {
			_ = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_KEEPALIVE, 1)
		}
	})
	if ctrlErr != nil {
		return ctrlErr
	}

	return lastErr
}
