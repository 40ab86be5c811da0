// cmd/rs01/output.go
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tamzrod/rs01/internal/rs01"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBasicInfo(w io.Writer, b rs01.BasicInfo) {
	fmt.Fprintf(w, "PID:       0x%04X\n", b.PID)
	fmt.Fprintf(w, "VID:       0x%04X\n", b.VID)
	fmt.Fprintf(w, "Address:   %d\n", b.Address)
	fmt.Fprintf(w, "Baud rate: %s\n", b.BaudRate)
	fmt.Fprintf(w, "Parity:    %s\n", b.Parity)
	fmt.Fprintf(w, "Stop bits: %s\n", b.StopBits)
	fmt.Fprintf(w, "Firmware:  %s\n", b.FirmwareVersion())
}

func printMeasurementData(w io.Writer, m rs01.MeasurementData) {
	fmt.Fprintf(w, "Targets: %d\n", m.Count)
	for i, t := range m.Detected() {
		fmt.Fprintf(w, "  #%d distance=%d intensity=%d\n", i+1, t.Distance, t.Intensity)
	}
}

func printMeasurementConfig(w io.Writer, c rs01.MeasurementConfig) {
	fmt.Fprintf(w, "Start position:  %d\n", c.StartPosition)
	fmt.Fprintf(w, "Stop position:   %d\n", c.StopPosition)
	fmt.Fprintf(w, "Start threshold: %d\n", c.StartThreshold)
	fmt.Fprintf(w, "End threshold:   %d\n", c.EndThreshold)
	fmt.Fprintf(w, "Sensitivity:     %d\n", c.Sensitivity)
	fmt.Fprintf(w, "Offset:          %d\n", c.Offset)
}
