package http1

import "bytes"

// RequestLine is the decomposed first line of a request. Fields are views
// into the extracted line, populated left to right by splitting on the
// first two separator bytes. Each field is independently capped and
// silently truncated; missing fields stay empty.
type RequestLine struct {
	Method  []byte // first field, at most MethodCap bytes
	Path    []byte // second field, at most PathCap bytes
	Version []byte // remainder after the second separator, at most VersionCap bytes
}

// ParseRequestLine splits line into at most three positional parts. The
// version field absorbs everything after the second separator, up to its
// own cap; there is no fourth field. Fewer than two separators leave the
// trailing fields empty, which is not an error. An empty line yields three
// empty fields.
func ParseRequestLine(line []byte) RequestLine {
	var rl RequestLine

	method := line
	if i := bytes.IndexByte(line, sep); i >= 0 {
		method = line[:i]
		rest := line[i+1:]

		path := rest
		if j := bytes.IndexByte(rest, sep); j >= 0 {
			path = rest[:j]
			rl.Version = truncate(rest[j+1:], VersionCap)
		}
		rl.Path = truncate(path, PathCap)
	}
	rl.Method = truncate(method, MethodCap)

	return rl
}

// truncate drops bytes beyond max.
func truncate(b []byte, max int) []byte {
	if len(b) > max {
		return b[:max]
	}
	return b
}
