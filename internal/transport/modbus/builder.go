// internal/transport/modbus/builder.go
package modbus

import (
	"log"
	"time"

	cfg "github.com/tamzrod/rs01/internal/config"
)

// Build constructs a connected Client from a normalized device config.
// frames, when non-nil, receives goburrow's raw frame dumps.
func Build(d cfg.DeviceConfig, frames *log.Logger) (*Client, error) {
	return New(Config{
		Mode:     d.Transport,
		Port:     d.Port,
		BaudRate: d.BaudRate,
		DataBits: d.DataBits,
		Parity:   d.Parity,
		StopBits: d.StopBits,
		RS485:    d.RS485,
		Endpoint: d.Endpoint,
		SlaveID:  d.SlaveID,
		Timeout:  time.Duration(d.TimeoutMs) * time.Millisecond,
		Logger:   frames,
	})
}
