// internal/config/normalize.go
package config

import "strings"

// Factory line settings of the module.
const (
	DefaultSlaveID    uint8 = 0x0E
	DefaultBaudRate         = 115200
	DefaultDataBits         = 8
	DefaultParity           = "N"
	DefaultStopBits         = 1
	DefaultTimeoutMs        = 500
	DefaultIntervalMs       = 1000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Device

	d.Transport = strings.ToLower(d.Transport)
	if d.Transport == "" {
		d.Transport = "rtu"
	}

	if d.SlaveID == 0 {
		d.SlaveID = DefaultSlaveID
	}
	if d.BaudRate == 0 {
		d.BaudRate = DefaultBaudRate
	}
	if d.DataBits == 0 {
		d.DataBits = DefaultDataBits
	}
	if d.StopBits == 0 {
		d.StopBits = DefaultStopBits
	}

	// Validate() already rejected unknown spellings
	if p, _ := parityCode(d.Parity); p != "" {
		d.Parity = p
	} else {
		d.Parity = DefaultParity
	}

	if d.TimeoutMs == 0 {
		d.TimeoutMs = DefaultTimeoutMs
	}

	if cfg.Watch.IntervalMs == 0 {
		cfg.Watch.IntervalMs = DefaultIntervalMs
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
