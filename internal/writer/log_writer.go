// internal/writer/log_writer.go
package writer

import (
	"fmt"
	"log/slog"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/status"
)

type logWriter struct {
	log *slog.Logger
}

// NewLog writes measurements at debug level, failures and status changes at warn/info.
func NewLog(l *slog.Logger) Sink {
	return &logWriter{log: l}
}

func (w *logWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		w.log.Warn("poll failed",
			"code", status.Code(res.Err),
			"err", res.Err,
		)
		return nil
	}

	args := []any{"count", res.Data.Count}
	for i, t := range res.Data.Detected() {
		args = append(args, slog.Group(
			fmt.Sprintf("target%d", i+1),
			"distance", t.Distance,
			"intensity", t.Intensity,
		))
	}
	w.log.Debug("measurement", args...)
	return nil
}

func (w *logWriter) WriteStatus(s status.Snapshot) error {
	w.log.Info("device status",
		"health", status.HealthName(s.Health),
		"last_error", status.Name(s.LastErrorCode),
		"seconds_in_error", s.SecondsInError,
	)
	return nil
}
