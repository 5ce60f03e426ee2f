package http1

import "strconv"

// responseCap fits the longest catalog entry, including the fixed header
// and terminators. Serialization never grows past it.
const responseCap = 64

// newStatus builds a catalog entry and pre-compiles its wire form:
//
//	<version> <code> <reason>\r\nConnection: close\r\n\r\n
//
// Responses always carry HTTP/1.1 regardless of the request version.
func newStatus(code int, reason string) *Status {
	wire := make([]byte, 0, responseCap)
	wire = append(wire, responseProto...)
	wire = append(wire, sep)
	wire = strconv.AppendInt(wire, int64(code), 10)
	wire = append(wire, sep)
	wire = append(wire, reason...)
	wire = append(wire, crlfBytes...)
	wire = append(wire, connectionClose...)
	wire = append(wire, crlfBytes...)
	wire = append(wire, crlfBytes...)

	return &Status{
		Code:   code,
		Reason: reason,
		wire:   wire,
	}
}

// WireBytes returns the serialized response for s. The slice is shared
// across connections and must not be modified.
func (s *Status) WireBytes() []byte {
	return s.wire
}
