// internal/watch/watch.go
package watch

import (
	"context"
	"log/slog"
	"time"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/status"
	"github.com/tamzrod/rs01/internal/writer"
)

// Run drives one device: the poller produces, this loop owns the status
// snapshot and delivers both to the sink. Blocks until ctx is done.
func Run(ctx context.Context, p *poller.Poller, sink writer.Sink, log *slog.Logger) {
	run(ctx, p, sink, log, time.Second)
}

func run(ctx context.Context, p *poller.Poller, sink writer.Sink, log *slog.Logger, tick time.Duration) {
	tr := status.NewTracker()
	sink = writer.Dedup(sink)

	// Full status assert on start.
	if err := sink.WriteStatus(tr.Snapshot()); err != nil {
		log.Warn("status write failed on start", "err", err)
	}

	out := make(chan poller.PollResult)
	go p.Run(ctx, out)

	secTicker := time.NewTicker(tick)
	defer secTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-out:
			if err := sink.Write(res); err != nil {
				log.Warn("writer error", "err", err)
			}

			if tr.Observe(res.Err) {
				if err := sink.WriteStatus(tr.Snapshot()); err != nil {
					log.Warn("status write failed", "err", err)
				}
			}

		case <-secTicker.C:
			// seconds_in_error advances on the 1 Hz ticker only.
			// Writing every tick also retries a status write that failed earlier.
			tr.Tick()
			if err := sink.WriteStatus(tr.Snapshot()); err != nil {
				log.Warn("status tick write failed", "err", err)
			}
		}
	}
}
