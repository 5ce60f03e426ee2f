// Package http1 implements the single-line protocol core of the responder:
// bounded request-line extraction, fixed-cap field parsing and a closed
// catalog of canned status responses.
package http1

// Field capacity limits. A field never grows past its cap; excess bytes
// are dropped silently rather than rejected.
const (
	// RequestCap is the maximum number of request-line bytes accumulated
	// from the wire. Anything past it is truncated, not an error.
	RequestCap = 65536

	// MethodCap fits the longest supported method (OPTIONS).
	MethodCap = 7

	// VersionCap fits the longest supported version token (HTTP/1.1).
	VersionCap = 8

	// PathCap is what remains of RequestCap after the other two fields
	// and their two separator bytes.
	PathCap = RequestCap - MethodCap - VersionCap - 2

	// chunkLen is the transient per-read buffer size used by the extractor.
	chunkLen = 16
)

// Wire bytes
const (
	sep = ' '  // request-line field separator
	cr  = '\r' // line terminator, as far as the extractor cares
)

var (
	crlfBytes       = []byte("\r\n")
	connectionClose = []byte("Connection: close")
	responseProto   = []byte("HTTP/1.1")
)

// healthPath is the only path answered with 200.
const healthPath = "/healthz"
