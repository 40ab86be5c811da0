// cmd/rs01/watch.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tamzrod/rs01/internal/metrics"
	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/watch"
	"github.com/tamzrod/rs01/internal/writer"
)

func newWatchCmd(g *globalFlags) *cobra.Command {
	var (
		intervalMs int
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll measurements continuously, tracking device health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()

			w := s.cfg.Watch
			if cmd.Flags().Changed("interval") {
				w.IntervalMs = intervalMs
			}
			if cmd.Flags().Changed("metrics") {
				w.MetricsListen = listen
			}

			p, err := poller.Build(s.dev, w)
			if err != nil {
				return err
			}

			sinks := []writer.Sink{writer.NewLog(s.log)}
			if g.json {
				sinks = append(sinks, writer.NewJSON(cmd.OutOrStdout()))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if w.MetricsListen != "" {
				reg := prometheus.NewRegistry()
				sinks = append(sinks, metrics.New(reg))

				srv := &http.Server{
					Addr:              w.MetricsListen,
					Handler:           metricsMux(reg),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					s.log.Info("serving metrics", "listen", w.MetricsListen)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						s.log.Error("metrics server failed", "err", err)
						stop()
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
			}

			s.log.Info("watching",
				"interval_ms", w.IntervalMs,
				"slave", s.cfg.Device.SlaveID,
			)
			watch.Run(ctx, p, writer.Multi(sinks...), s.log)
			return nil
		},
	}

	cmd.Flags().IntVar(&intervalMs, "interval", 0, "poll interval in ms (default from config, 1000)")
	cmd.Flags().StringVar(&listen, "metrics", "", "serve Prometheus metrics on this address, e.g. :9108")
	return cmd
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	return mux
}
