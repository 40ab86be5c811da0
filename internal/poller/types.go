// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/rs01/internal/rs01"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	At time.Time

	// Data is only meaningful when Err is nil.
	Data rs01.MeasurementData

	Err error // non-nil means the poll cycle failed; status code is preserved
}
