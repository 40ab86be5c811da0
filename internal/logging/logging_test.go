// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json"}, &buf)

	l.Info("dropped")
	l.Warn("kept", "code", 9)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("not JSON: %v (%s)", err, out)
	}
	if rec["msg"] != "kept" || rec["code"] != float64(9) {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestStdLogger_DebugOnly(t *testing.T) {
	var buf bytes.Buffer

	quiet := StdLogger(New(Config{Level: "info"}, &buf), "modbus")
	quiet.Printf("rtu: sending % x", []byte{0x0e, 0x03})
	if buf.Len() != 0 {
		t.Fatalf("frame dump leaked at info level: %s", buf.String())
	}

	loud := StdLogger(New(Config{Level: "debug"}, &buf), "modbus")
	loud.Printf("rtu: sending % x", []byte{0x0e, 0x03})
	if !strings.Contains(buf.String(), "component=modbus") {
		t.Fatalf("component attr missing: %s", buf.String())
	}
}
