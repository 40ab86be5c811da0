// cmd/rs01/commands.go
package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.bug.st/serial"
)

func newInfoCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show product id, vendor id, address, line settings and firmware",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.dev.RefreshBasicInfo(); err != nil {
				return fmt.Errorf("read basic info: %w", err)
			}

			if g.json {
				return printJSON(cmd.OutOrStdout(), s.dev.BasicInfo())
			}
			printBasicInfo(cmd.OutOrStdout(), s.dev.BasicInfo())
			return nil
		},
	}
}

func newMeasureCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "measure",
		Short: "Read the detected objects once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.dev.RefreshMeasurementData(); err != nil {
				return fmt.Errorf("read measurement data: %w", err)
			}

			if g.json {
				return printJSON(cmd.OutOrStdout(), s.dev.MeasurementData())
			}
			printMeasurementData(cmd.OutOrStdout(), s.dev.MeasurementData())
			return nil
		},
	}
}

func newConfigCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the measurement window, thresholds, sensitivity and offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.dev.RefreshMeasurementConfig(); err != nil {
				return fmt.Errorf("read measurement config: %w", err)
			}

			if g.json {
				return printJSON(cmd.OutOrStdout(), s.dev.MeasurementConfig())
			}
			printMeasurementConfig(cmd.OutOrStdout(), s.dev.MeasurementConfig())
			return nil
		},
	}
}

func newResetCmd(g *globalFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore factory settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset: refusing without --yes")
			}

			s, err := openSession(cmd, g)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.dev.RestoreFactorySettings(); err != nil {
				return fmt.Errorf("factory reset: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "factory reset requested")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the factory reset")
	return cmd
}

func newPortsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := serial.GetPortsList()
			if err != nil {
				return fmt.Errorf("list serial ports: %w", err)
			}
			sort.Strings(ports)

			if g.json {
				return printJSON(cmd.OutOrStdout(), ports)
			}
			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
