package logging

import (
	"strings"
	"testing"
)

func TestHelpersSafeWithoutInitialize(t *testing.T) {
	logger = nil
	LogConnection("192.0.2.1:5000", "connection_accepted")
	LogRequest("192.0.2.1:5000", "GET", "/state")
	LogResponse(200, 17)
	LogRawBytes("request line", []byte("GET / HTTP/1.1\r\n"))
	if GetLogger() == nil {
		t.Fatal("GetLogger() should never return nil")
	}
}

func TestDumpsAreCapped(t *testing.T) {
	big := make([]byte, 1024)
	for i := range big {
		big[i] = 'A'
	}
	if h := hexDump(big); !strings.HasSuffix(h, "...") {
		t.Error("hexDump should truncate long payloads")
	}
	if a := asciiDump(big); len(a) != 256 {
		t.Errorf("asciiDump length = %d, want 256", len(a))
	}
}

func TestAsciiDumpMasksControlBytes(t *testing.T) {
	got := asciiDump([]byte("GET /\r\n"))
	if got != "GET /.." {
		t.Errorf("asciiDump = %q, want %q", got, "GET /..")
	}
}
