// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/rs01/internal/rs01"
)

// Device abstracts the measurement operations needed by the poller.
// *rs01.Device satisfies it.
type Device interface {
	RefreshMeasurementData() error
	MeasurementData() rs01.MeasurementData
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg Config
	dev Device
}

// New creates a poller with immutable config.
func New(cfg Config, dev Device) (*Poller, error) {
	if dev == nil {
		return nil, errors.New("poller: device required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	return &Poller{cfg: cfg, dev: dev}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: on failure Data is zero and Err carries the transport status.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{At: time.Now()}

	if err := p.dev.RefreshMeasurementData(); err != nil {
		res.Err = err
		return res
	}

	res.Data = p.dev.MeasurementData()
	return res
}
