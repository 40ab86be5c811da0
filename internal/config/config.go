// internal/config/config.go
package config

type Config struct {
	Device DeviceConfig `yaml:"device"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Transport string `yaml:"transport"` // "rtu" (default) or "tcp"

	// RTU line
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"`
	StopBits int    `yaml:"stop_bits"`
	RS485    bool   `yaml:"rs485"`

	// Modbus TCP gateway
	Endpoint string `yaml:"endpoint"`

	SlaveID   uint8 `yaml:"slave_id"`
	TimeoutMs int   `yaml:"timeout_ms"`
}

// ---- WATCH ----

type WatchConfig struct {
	IntervalMs    int    `yaml:"interval_ms"`
	MetricsListen string `yaml:"metrics_listen"` // empty => no /metrics endpoint
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	Frames bool   `yaml:"frames"` // dump raw Modbus frames
}
