package http1

// IsMethodAllowed reports whether method is one of the eight supported
// request methods: GET, HEAD, POST, PUT, DELETE, OPTIONS, PATCH, TRACE.
// Length-switched byte comparisons, zero allocations.
func IsMethodAllowed(method []byte) bool {
	switch len(method) {
	case 3: // GET, PUT
		if method[0] == 'G' && method[1] == 'E' && method[2] == 'T' {
			return true
		}
		if method[0] == 'P' && method[1] == 'U' && method[2] == 'T' {
			return true
		}

	case 4: // HEAD, POST
		if method[0] == 'H' && method[1] == 'E' && method[2] == 'A' && method[3] == 'D' {
			return true
		}
		if method[0] == 'P' && method[1] == 'O' && method[2] == 'S' && method[3] == 'T' {
			return true
		}

	case 5: // PATCH, TRACE
		if method[0] == 'P' && method[1] == 'A' && method[2] == 'T' && method[3] == 'C' && method[4] == 'H' {
			return true
		}
		if method[0] == 'T' && method[1] == 'R' && method[2] == 'A' && method[3] == 'C' && method[4] == 'E' {
			return true
		}

	case 6: // DELETE
		if method[0] == 'D' && method[1] == 'E' && method[2] == 'L' &&
			method[3] == 'E' && method[4] == 'T' && method[5] == 'E' {
			return true
		}

	case 7: // OPTIONS
		if method[0] == 'O' && method[1] == 'P' && method[2] == 'T' &&
			method[3] == 'I' && method[4] == 'O' && method[5] == 'N' && method[6] == 'S' {
			return true
		}
	}

	return false
}

// IsVersionSupported reports whether version is HTTP/1.0 or HTTP/1.1.
// HTTP/2 is deliberately unsupported at the line level.
func IsVersionSupported(version []byte) bool {
	if len(version) != 8 {
		return false
	}
	if version[0] != 'H' || version[1] != 'T' || version[2] != 'T' || version[3] != 'P' ||
		version[4] != '/' || version[5] != '1' || version[6] != '.' {
		return false
	}
	return version[7] == '0' || version[7] == '1'
}
