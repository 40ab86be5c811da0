// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/rs01/internal/config"
)

// Build constructs a Poller from a normalized watch config.
// The device (and its transport lifecycle) is owned by the caller.
func Build(dev Device, w cfg.WatchConfig) (*Poller, error) {
	return New(
		Config{Interval: time.Duration(w.IntervalMs) * time.Millisecond},
		dev,
	)
}
