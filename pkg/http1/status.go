package http1

// Status is one immutable entry of the closed response catalog: numeric
// code, reason phrase and the pre-compiled wire form carrying the single
// fixed response header. Entries are built once at startup and shared
// read-only by every connection; they are never cloned per request.
type Status struct {
	Code   int
	Reason string

	// wire is the serialized response for this entry.
	wire []byte
}

// The response catalog. These are the only answers the responder ever
// writes to a client.
var (
	Status200 = newStatus(200, "OK")
	Status400 = newStatus(400, "Bad Request")
	Status404 = newStatus(404, "Not Found")
	Status405 = newStatus(405, "Method Not Allowed")
	Status414 = newStatus(414, "URI Too Long")
	Status505 = newStatus(505, "HTTP Version Not Supported")
)

// Decide maps an extracted line and its parsed form to a catalog entry.
// Pure function: identical inputs always yield the identical entry,
// regardless of call order. Precedence, first match wins:
//
//	1. empty or non-ASCII line                  -> 400
//	2. unknown method                           -> 405
//	3. no path, bad path or no version field    -> 414
//	4. unsupported version                      -> 505
//	5. /healthz                                 -> 200
//	6. anything else                            -> 404
//
// A missing version field reports 414 even when the URI itself was short;
// the emptiness signal does not distinguish truncation from a two-field
// request line. Kept as-is for compatibility with deployed behavior.
func Decide(raw []byte, req RequestLine) *Status {
	if len(raw) == 0 || !isASCII(raw) {
		return Status400
	}
	if !IsMethodAllowed(req.Method) {
		return Status405
	}
	if len(req.Path) == 0 || req.Path[0] != '/' || len(req.Version) == 0 {
		return Status414
	}
	if !IsVersionSupported(req.Version) {
		return Status505
	}
	if string(req.Path) == healthPath {
		return Status200
	}
	return Status404
}

// isASCII reports whether every byte of b is below 0x80.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
