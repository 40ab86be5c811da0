// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/status"
)

// Writer delivers poll results to one sink.
type Writer interface {
	Write(res poller.PollResult) error
}

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and writes it verbatim.
// No logic, no state, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// Sink is a destination that takes both.
type Sink interface {
	Writer
	StatusWriter
}
