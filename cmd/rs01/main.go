// cmd/rs01/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tamzrod/rs01/internal/config"
	"github.com/tamzrod/rs01/internal/logging"
	"github.com/tamzrod/rs01/internal/rs01"
	"github.com/tamzrod/rs01/internal/status"
	tmodbus "github.com/tamzrod/rs01/internal/transport/modbus"
)

var version = "dev"

// flags shared by every command
type globalFlags struct {
	cfgFile  string
	port     string
	endpoint string
	slave    uint8
	baud     int
	timeout  int
	verbose  bool
	json     bool
}

// transport is what commands need from the wire: register access plus lifecycle.
type transport interface {
	rs01.Transport
	Close() error
}

// openTransport is swapped in tests.
var openTransport = func(d config.DeviceConfig, frames *log.Logger) (transport, error) {
	return tmodbus.Build(d, frames)
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if code, ok := status.Lookup(err); ok {
			fmt.Fprintf(os.Stderr, "status: %s (%d)\n", status.Name(code), code)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "rs01",
		Short:         "Read and configure an RS01 ranging module over Modbus",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&g.cfgFile, "config", "c", "", "YAML config file")
	pf.StringVarP(&g.port, "port", "p", "", "serial port (rtu transport)")
	pf.StringVar(&g.endpoint, "endpoint", "", "Modbus TCP gateway host:port (tcp transport)")
	pf.Uint8VarP(&g.slave, "slave", "s", 0, "device address (default 14)")
	pf.IntVarP(&g.baud, "baud", "b", 0, "line baud rate (default 115200)")
	pf.IntVar(&g.timeout, "timeout", 0, "response timeout in ms (default 500)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging and frame dumps")
	pf.BoolVar(&g.json, "json", false, "JSON output")

	root.AddCommand(
		newInfoCmd(g),
		newMeasureCmd(g),
		newConfigCmd(g),
		newSetCmd(g),
		newResetCmd(g),
		newWatchCmd(g),
		newPortsCmd(g),
	)

	return root
}

// loadConfig merges the config file (optional) with command-line overrides,
// then validates and normalizes.
func loadConfig(cmd *cobra.Command, g *globalFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if g.cfgFile != "" {
		c, err := config.Load(g.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Device.Transport = tmodbus.ModeRTU
		cfg.Device.Port = g.port
	}
	if flags.Changed("endpoint") {
		cfg.Device.Transport = tmodbus.ModeTCP
		cfg.Device.Endpoint = g.endpoint
	}
	if flags.Changed("slave") {
		cfg.Device.SlaveID = g.slave
	}
	if flags.Changed("baud") {
		cfg.Device.BaudRate = g.baud
	}
	if flags.Changed("timeout") {
		cfg.Device.TimeoutMs = g.timeout
	}
	if g.verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Frames = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)

	return cfg, nil
}

// session is one opened device plus what is needed to tear it down.
type session struct {
	cfg *config.Config
	log *slog.Logger
	dev *rs01.Device
	tr  transport
}

func (s *session) Close() {
	if err := s.tr.Close(); err != nil {
		s.log.Warn("transport close failed", "err", err)
	}
}

// openSession loads config, opens the transport and verifies the product id.
func openSession(cmd *cobra.Command, g *globalFlags) (*session, error) {
	cfg, err := loadConfig(cmd, g)
	if err != nil {
		return nil, err
	}

	l := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())

	var frames *log.Logger
	if cfg.Log.Frames {
		frames = logging.StdLogger(l, "modbus")
	}

	tr, err := openTransport(cfg.Device, frames)
	if err != nil {
		return nil, err
	}

	dev := rs01.New(tr)
	if err := dev.Begin(); err != nil {
		_ = tr.Close()
		return nil, err
	}

	l.Debug("device ready",
		"transport", cfg.Device.Transport,
		"slave", cfg.Device.SlaveID,
	)

	return &session{cfg: cfg, log: l, dev: dev, tr: tr}, nil
}
