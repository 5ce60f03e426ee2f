package server

import (
	"io"
	"net"
	"os"
	"syscall"
	"testing"
)

func TestIsWouldBlock(t *testing.T) {
	if !isWouldBlock(syscall.EAGAIN) {
		t.Error("isWouldBlock(EAGAIN) = false, want true")
	}
	if !isWouldBlock(syscall.EWOULDBLOCK) {
		t.Error("isWouldBlock(EWOULDBLOCK) = false, want true")
	}

	// The condition must be found through the usual net error wrapping.
	wrapped := &net.OpError{
		Op:  "write",
		Err: os.NewSyscallError("write", syscall.EWOULDBLOCK),
	}
	if !isWouldBlock(wrapped) {
		t.Error("isWouldBlock(wrapped EWOULDBLOCK) = false, want true")
	}

	if isWouldBlock(nil) {
		t.Error("isWouldBlock(nil) = true, want false")
	}
	if isWouldBlock(io.ErrClosedPipe) {
		t.Error("isWouldBlock(ErrClosedPipe) = true, want false")
	}
	if isWouldBlock(syscall.ECONNRESET) {
		t.Error("isWouldBlock(ECONNRESET) = true, want false")
	}
}
