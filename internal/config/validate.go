// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only; zero values mean "use the default".
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	d := cfg.Device

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	switch strings.ToLower(d.Transport) {
	case "", "rtu":
		if d.Port == "" {
			return errors.New("device: port is required for rtu transport")
		}
	case "tcp":
		if d.Endpoint == "" {
			return errors.New("device: endpoint is required for tcp transport")
		}
	default:
		return fmt.Errorf("device: unsupported transport %q (expected rtu or tcp)", d.Transport)
	}

	// ------------------------------------------------------------
	// SERIAL LINE
	// ------------------------------------------------------------

	if d.BaudRate < 0 {
		return fmt.Errorf("device: baud_rate %d must be positive", d.BaudRate)
	}
	if d.DataBits != 0 && (d.DataBits < 5 || d.DataBits > 8) {
		return fmt.Errorf("device: data_bits %d must be between 5 and 8", d.DataBits)
	}
	if d.StopBits != 0 && d.StopBits != 1 && d.StopBits != 2 {
		return fmt.Errorf("device: stop_bits %d must be 1 or 2", d.StopBits)
	}
	if _, ok := parityCode(d.Parity); !ok {
		return fmt.Errorf("device: unsupported parity %q (expected N, E or O)", d.Parity)
	}

	// ------------------------------------------------------------
	// ADDRESSING / TIMING
	// ------------------------------------------------------------

	// 0 is broadcast; the module never answers it.
	if d.SlaveID > 247 {
		return fmt.Errorf("device: slave_id %d out of range 1..247", d.SlaveID)
	}
	if d.TimeoutMs < 0 {
		return fmt.Errorf("device: timeout_ms %d must not be negative", d.TimeoutMs)
	}
	if cfg.Watch.IntervalMs < 0 {
		return fmt.Errorf("watch: interval_ms %d must not be negative", cfg.Watch.IntervalMs)
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unsupported level %q", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log: unsupported format %q", cfg.Log.Format)
	}

	return nil
}

// parityCode maps the accepted spellings to goburrow's single-letter form.
// Empty is accepted and resolved by Normalize.
func parityCode(p string) (string, bool) {
	switch strings.TrimSpace(strings.ToUpper(p)) {
	case "":
		return "", true
	case "N", "NONE":
		return "N", true
	case "E", "EVEN":
		return "E", true
	case "O", "ODD":
		return "O", true
	default:
		return "", false
	}
}
