package http1

import (
	"strings"
	"testing"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Status
	}{
		{"healthz", "GET /healthz HTTP/1.1", Status200},
		{"healthz http10", "GET /healthz HTTP/1.0", Status200},
		{"unknown path", "GET /test HTTP/1.1", Status404},
		{"root path", "GET / HTTP/1.1", Status404},
		{"empty line", "", Status400},
		{"non-ascii path", "GET /caf\xc3\xa9 HTTP/1.1", Status400},
		{"unknown method", "FETCH /healthz HTTP/1.1", Status405},
		{"lowercase method", "get /healthz HTTP/1.1", Status405},
		{"connect unsupported", "CONNECT /healthz HTTP/1.1", Status405},
		{"method only", "GET", Status414},
		{"missing version", "GET /too-long-path", Status414},
		{"path without slash", "GET healthz HTTP/1.1", Status414},
		{"http2", "GET /healthz HTTP/2", Status505},
		{"http09", "GET /healthz HTTP/0.9", Status505},
		{"garbage version", "GET /healthz HTTPS1.1", Status505},
		{"oversized method decides as OPTIONS", "OPTIONSBUTLONGER /test HTTP/1.1", Status404},
		{"version absorbs remainder", "GET /healthz HTTP/1.1 whatever", Status200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(tt.line)
			got := Decide(raw, ParseRequestLine(raw))
			if got != tt.want {
				t.Errorf("Decide(%q) = %d %s, want %d %s",
					tt.line, got.Code, got.Reason, tt.want.Code, tt.want.Reason)
			}
		})
	}
}

func TestDecideIsPure(t *testing.T) {
	raw := []byte("GET /test HTTP/1.1")
	first := Decide(raw, ParseRequestLine(raw))

	// Interleave unrelated decisions; the result must not change.
	other := []byte("FETCH / HTTP/1.1")
	for i := 0; i < 3; i++ {
		Decide(other, ParseRequestLine(other))
		if got := Decide(raw, ParseRequestLine(raw)); got != first {
			t.Fatalf("Decide returned %d on call %d, want %d", got.Code, i+2, first.Code)
		}
	}
}

func TestDecideMissingVersionReportsURITooLong(t *testing.T) {
	// A line without a third field reports 414 even when the URI was
	// short; the emptiness signal does not distinguish truncation from a
	// two-field request line.
	line := "GET /" + strings.Repeat("a", RequestCap-5)
	raw := []byte(line)[:RequestCap]

	if got := Decide(raw, ParseRequestLine(raw)); got != Status414 {
		t.Errorf("Decide(cap-length line) = %d, want 414", got.Code)
	}
}

func TestIsMethodAllowed(t *testing.T) {
	allowed := []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS", "PATCH", "TRACE"}
	for _, m := range allowed {
		if !IsMethodAllowed([]byte(m)) {
			t.Errorf("IsMethodAllowed(%q) = false, want true", m)
		}
	}

	denied := []string{"", "get", "GETX", "OPTION", "CONNECT", "FETCH"}
	for _, m := range denied {
		if IsMethodAllowed([]byte(m)) {
			t.Errorf("IsMethodAllowed(%q) = true, want false", m)
		}
	}
}

func TestIsVersionSupported(t *testing.T) {
	supported := []string{"HTTP/1.0", "HTTP/1.1"}
	for _, v := range supported {
		if !IsVersionSupported([]byte(v)) {
			t.Errorf("IsVersionSupported(%q) = false, want true", v)
		}
	}

	unsupported := []string{"", "HTTP/2", "HTTP/1.2", "HTTP/1.", "HTTP/10", "http/1.1", "HTTPS1.1"}
	for _, v := range unsupported {
		if IsVersionSupported([]byte(v)) {
			t.Errorf("IsVersionSupported(%q) = true, want false", v)
		}
	}
}
