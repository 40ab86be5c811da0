// internal/config/normalize_test.go
package config

import "testing"

func TestNormalize_Defaults(t *testing.T) {
	cfg := rtu()
	Normalize(cfg)

	d := cfg.Device
	if d.Transport != "rtu" {
		t.Fatalf("transport: got=%q want=rtu", d.Transport)
	}
	if d.SlaveID != 0x0E {
		t.Fatalf("slave_id: got=%d want=14", d.SlaveID)
	}
	if d.BaudRate != 115200 || d.DataBits != 8 || d.Parity != "N" || d.StopBits != 1 {
		t.Fatalf("line: got %d %d%s%d want 115200 8N1", d.BaudRate, d.DataBits, d.Parity, d.StopBits)
	}
	if d.TimeoutMs != 500 {
		t.Fatalf("timeout_ms: got=%d want=500", d.TimeoutMs)
	}
	if cfg.Watch.IntervalMs != 1000 {
		t.Fatalf("interval_ms: got=%d want=1000", cfg.Watch.IntervalMs)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("log: got %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := rtu()
	cfg.Device.Parity = "odd"
	cfg.Device.SlaveID = 3
	cfg.Device.BaudRate = 9600
	cfg.Log.Level = "DEBUG"
	Normalize(cfg)

	if cfg.Device.Parity != "O" {
		t.Fatalf("parity: got=%q want=O", cfg.Device.Parity)
	}
	if cfg.Device.SlaveID != 3 || cfg.Device.BaudRate != 9600 {
		t.Fatalf("explicit values overwritten: %+v", cfg.Device)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("level: got=%q want=debug", cfg.Log.Level)
	}
}

func TestParse(t *testing.T) {
	src := []byte(`
device:
  transport: tcp
  endpoint: 192.168.1.40:502
  slave_id: 14
  timeout_ms: 800
watch:
  interval_ms: 250
  metrics_listen: ":9108"
log:
  level: debug
  format: json
`)

	cfg, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() err=%v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
	if cfg.Device.Endpoint != "192.168.1.40:502" || cfg.Device.TimeoutMs != 800 {
		t.Fatalf("device not decoded: %+v", cfg.Device)
	}
	if cfg.Watch.MetricsListen != ":9108" || cfg.Watch.IntervalMs != 250 {
		t.Fatalf("watch not decoded: %+v", cfg.Watch)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	if _, err := Parse([]byte("device:\n  prot: /dev/ttyS0\n")); err == nil {
		t.Fatalf("expected unknown field error, got nil")
	}
}
