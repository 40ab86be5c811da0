// cmd/rs01/set.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamzrod/rs01/internal/rs01"
)

const powerCycleNote = "written; takes effect after the module is power cycled"

func newSetCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Write configuration registers",
	}

	cmd.AddCommand(
		newSetAddressCmd(g),
		newSetBaudCmd(g),
		newSetSerialCmd(g),
		newSetWindowCmd(g),
		newSetThresholdsCmd(g),
		newSetSensitivityCmd(g),
		newSetOffsetCmd(g),
		newSetParamsCmd(g),
	)

	return cmd
}

// withDevice opens a session, runs fn and reports msg on success.
func withDevice(cmd *cobra.Command, g *globalFlags, msg string, fn func(d *rs01.Device) error) error {
	s, err := openSession(cmd, g)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s.dev); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func parseU16(name, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a 16-bit unsigned value", name, s)
	}
	return uint16(v), nil
}

func newSetAddressCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "address ADDR",
		Short: "Set the Modbus device address (1..247)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseU16("address", args[0])
			if err != nil {
				return err
			}
			return withDevice(cmd, g, "address "+powerCycleNote, func(d *rs01.Device) error {
				if err := d.SetAddress(addr); err != nil {
					return fmt.Errorf("set address: %w", err)
				}
				return nil
			})
		},
	}
}

func newSetBaudCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "baud BPS",
		Short: "Set the line baud rate (2400..1000000)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("baud: %q is not a number", args[0])
			}
			code, ok := rs01.BaudRateFromBps(bps)
			if !ok {
				return fmt.Errorf("baud: %d is not a rate the module supports", bps)
			}
			return withDevice(cmd, g, "baud rate "+powerCycleNote, func(d *rs01.Device) error {
				if err := d.SetBaudRate(code); err != nil {
					return fmt.Errorf("set baud rate: %w", err)
				}
				return nil
			})
		},
	}
}

func newSetSerialCmd(g *globalFlags) *cobra.Command {
	var parity string
	var stop int

	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Set parity and stop bits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p rs01.Parity
			switch strings.ToLower(parity) {
			case "n", "none":
				p = rs01.ParityNone
			case "e", "even":
				p = rs01.ParityEven
			case "o", "odd":
				p = rs01.ParityOdd
			default:
				return fmt.Errorf("serial: unsupported parity %q", parity)
			}

			var sb rs01.StopBits
			switch stop {
			case 1:
				sb = rs01.StopBits1
			case 2:
				sb = rs01.StopBits2
			default:
				return fmt.Errorf("serial: stop bits must be 1 or 2, got %d", stop)
			}

			return withDevice(cmd, g, "serial format "+powerCycleNote, func(d *rs01.Device) error {
				if err := d.SetParityStopBits(p, sb); err != nil {
					return fmt.Errorf("set parity/stop bits: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parity, "parity", "none", "none, even or odd")
	cmd.Flags().IntVar(&stop, "stop", 1, "stop bits, 1 or 2")
	return cmd
}

func newSetWindowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "window START STOP",
		Short: "Set the measurement start and stop positions (70..6600)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseU16("start", args[0])
			if err != nil {
				return err
			}
			stop, err := parseU16("stop", args[1])
			if err != nil {
				return err
			}
			return withDevice(cmd, g, "measurement window written", func(d *rs01.Device) error {
				if err := d.SetMeasurementWindow(start, stop); err != nil {
					return fmt.Errorf("set measurement window: %w", err)
				}
				return nil
			})
		},
	}
}

func newSetThresholdsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "thresholds START END",
		Short: "Set the start and end thresholds (100..10000)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseU16("start threshold", args[0])
			if err != nil {
				return err
			}
			end, err := parseU16("end threshold", args[1])
			if err != nil {
				return err
			}
			return withDevice(cmd, g, "thresholds written", func(d *rs01.Device) error {
				if err := d.SetThresholds(start, end); err != nil {
					return fmt.Errorf("set thresholds: %w", err)
				}
				return nil
			})
		},
	}
}

func newSetSensitivityCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sensitivity LEVEL",
		Short: "Set the module sensitivity (0..4)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseU16("sensitivity", args[0])
			if err != nil {
				return err
			}
			return withDevice(cmd, g, "sensitivity written", func(d *rs01.Device) error {
				if err := d.SetSensitivity(level); err != nil {
					return fmt.Errorf("set sensitivity: %w", err)
				}
				return nil
			})
		},
	}
}

func newSetOffsetCmd(g *globalFlags) *cobra.Command {
	var offset int16

	cmd := &cobra.Command{
		Use:     "offset --value N",
		Short:   "Set the signed comparison offset",
		Example: "  rs01 set offset --value=-120",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(cmd, g, "comparison offset written", func(d *rs01.Device) error {
				if err := d.SetComparisonOffset(offset); err != nil {
					return fmt.Errorf("set comparison offset: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().Int16Var(&offset, "value", 0, "offset, -32768..32767")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// newSetParamsCmd writes the whole measurement block in one request.
// Fields not given on the command line keep their current device value.
func newSetParamsCmd(g *globalFlags) *cobra.Command {
	var c rs01.MeasurementConfig

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Set several measurement parameters in one write",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(cmd, g, "measurement parameters written", func(d *rs01.Device) error {
				if err := d.RefreshMeasurementConfig(); err != nil {
					return fmt.Errorf("read measurement config: %w", err)
				}
				next := mergeParams(cmd, d.MeasurementConfig(), c)
				if err := d.SetMeasurementConfig(next); err != nil {
					return fmt.Errorf("set measurement config: %w", err)
				}
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Uint16Var(&c.StartPosition, "start", 0, "measurement start position")
	f.Uint16Var(&c.StopPosition, "stop", 0, "measurement stop position")
	f.Uint16Var(&c.StartThreshold, "start-threshold", 0, "start threshold")
	f.Uint16Var(&c.EndThreshold, "end-threshold", 0, "end threshold")
	f.Uint16Var(&c.Sensitivity, "sensitivity", 0, "module sensitivity")
	f.Int16Var(&c.Offset, "offset", 0, "signed comparison offset")
	return cmd
}

func mergeParams(cmd *cobra.Command, cur, req rs01.MeasurementConfig) rs01.MeasurementConfig {
	f := cmd.Flags()
	if f.Changed("start") {
		cur.StartPosition = req.StartPosition
	}
	if f.Changed("stop") {
		cur.StopPosition = req.StopPosition
	}
	if f.Changed("start-threshold") {
		cur.StartThreshold = req.StartThreshold
	}
	if f.Changed("end-threshold") {
		cur.EndThreshold = req.EndThreshold
	}
	if f.Changed("sensitivity") {
		cur.Sensitivity = req.Sensitivity
	}
	if f.Changed("offset") {
		cur.Offset = req.Offset
	}
	return cur
}
