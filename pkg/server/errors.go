package server

import (
	"errors"
	"syscall"
)

// isWouldBlock reports whether err is the transient socket-buffer-full
// condition. A write failing this way is ignored rather than treated as a
// broken connection.
func isWouldBlock(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK)
}
