// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"

	"github.com/tamzrod/rs01/internal/status"
)

// dedupSink forwards a status snapshot only when it differs from the last one
// delivered. Poll results pass straight through.
type dedupSink struct {
	Sink

	needFull bool
	last     status.Snapshot
}

// Dedup wraps s so WriteStatus can be called every tick without flooding it.
// The first snapshot is always delivered.
func Dedup(s Sink) Sink {
	return &dedupSink{Sink: s, needFull: true}
}

// WriteStatus delivers s if it changed.
// On any write failure, the next call re-asserts the full snapshot.
func (d *dedupSink) WriteStatus(s status.Snapshot) error {
	if d == nil || d.Sink == nil {
		return errors.New("status writer: disabled")
	}

	if !d.needFull && s == d.last {
		return nil
	}

	if err := d.Sink.WriteStatus(s); err != nil {
		d.needFull = true
		return fmt.Errorf("status writer: %w", err)
	}

	d.needFull = false
	d.last = s
	return nil
}
