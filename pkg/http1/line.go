package http1

import (
	"bytes"
	"io"
	"sync"

	"github.com/valyala/bytebufferpool"
)

// chunkPool hands out the transient read buffers so extraction allocates
// nothing per connection.
var chunkPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, chunkLen)
		return &buf
	},
}

// linePool owns the request-line accumulators. Callers acquire one per
// connection and must release it once the response has been written.
var linePool bytebufferpool.Pool

// AcquireLine returns an empty accumulator for ReadRequestLine.
func AcquireLine() *bytebufferpool.ByteBuffer {
	return linePool.Get()
}

// ReleaseLine returns an accumulator to the pool. The line bytes must not
// be referenced afterwards.
func ReleaseLine(buf *bytebufferpool.ByteBuffer) {
	linePool.Put(buf)
}

// ReadRequestLine appends bytes from r to buf until the first CR byte, the
// RequestCap boundary, or the peer stops sending, whichever comes first.
// The terminator itself is not appended.
//
// Reads happen in chunkLen-sized chunks. A read returning fewer bytes than
// a full chunk is treated as end-of-stream for this request: the peer has
// stopped sending within this read cycle. Read errors and zero-byte reads
// end extraction the same way. None of these outcomes is an error; the
// caller always gets whatever was accumulated, possibly nothing.
//
// The stream is only read from, never closed or shut down.
func ReadRequestLine(r io.Reader, buf *bytebufferpool.ByteBuffer) {
	chunkPtr := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(chunkPtr)
	chunk := *chunkPtr

	for {
		n, err := r.Read(chunk)
		if n <= 0 {
			return
		}

		last := n < chunkLen || err != nil

		// Truncate the chunk at the line terminator.
		if i := bytes.IndexByte(chunk[:n], cr); i >= 0 {
			n = i
			last = true
		}

		// Clamp so the accumulator never exceeds the cap; a full
		// accumulator ends extraction.
		if buf.Len()+n >= RequestCap {
			n = RequestCap - buf.Len()
			last = true
		}

		buf.Write(chunk[:n]) // ByteBuffer.Write cannot fail

		if last {
			return
		}
	}
}
