// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid rtu config quickly
func rtu() *Config {
	return &Config{
		Device: DeviceConfig{
			Port: "/dev/ttyUSB0",
		},
	}
}

// ---- tests ----

func TestValidate_MinimalRTU(t *testing.T) {
	if err := Validate(rtu()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RTURequiresPort(t *testing.T) {
	cfg := rtu()
	cfg.Device.Port = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing port error, got nil")
	}
}

func TestValidate_TCPRequiresEndpoint(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Transport: "tcp"}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing endpoint error, got nil")
	}

	cfg.Device.Endpoint = "10.0.0.5:502"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownTransport(t *testing.T) {
	cfg := rtu()
	cfg.Device.Transport = "ascii"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected transport error, got nil")
	}
}

func TestValidate_SerialLine(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Device.DataBits = 9 },
		func(c *Config) { c.Device.StopBits = 3 },
		func(c *Config) { c.Device.Parity = "mark" },
		func(c *Config) { c.Device.BaudRate = -1 },
	}

	for i, mutate := range bad {
		cfg := rtu()
		mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
	}
}

func TestValidate_SlaveIDRange(t *testing.T) {
	cfg := rtu()
	cfg.Device.SlaveID = 247
	if err := Validate(cfg); err != nil {
		t.Fatalf("slave 247 should be valid: %v", err)
	}

	cfg.Device.SlaveID = 248
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected slave_id range error, got nil")
	}
}

func TestValidate_Log(t *testing.T) {
	cfg := rtu()
	cfg.Log.Level = "trace"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected log level error, got nil")
	}

	cfg = rtu()
	cfg.Log.Format = "xml"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected log format error, got nil")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := rtu()
	cfg.Device.Parity = "even"

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Device.Parity != "even" || cfg.Device.SlaveID != 0 {
		t.Fatalf("Validate mutated config: %+v", cfg.Device)
	}
}
