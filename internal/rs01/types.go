// internal/rs01/types.go
package rs01

import "fmt"

// BaudRate is the code stored in RegBaudRate.
type BaudRate uint16

const (
	Baud2400    BaudRate = 0x0001
	Baud4800    BaudRate = 0x0002
	Baud9600    BaudRate = 0x0003
	Baud14400   BaudRate = 0x0004
	Baud19200   BaudRate = 0x0005
	Baud38400   BaudRate = 0x0006
	Baud57600   BaudRate = 0x0007
	Baud115200  BaudRate = 0x0008
	Baud1000000 BaudRate = 0x0009
)

var baudRates = map[BaudRate]int{
	Baud2400:    2400,
	Baud4800:    4800,
	Baud9600:    9600,
	Baud14400:   14400,
	Baud19200:   19200,
	Baud38400:   38400,
	Baud57600:   57600,
	Baud115200:  115200,
	Baud1000000: 1000000,
}

// Bps returns the line rate for a known code, 0 otherwise.
func (b BaudRate) Bps() int { return baudRates[b] }

func (b BaudRate) String() string {
	if bps := b.Bps(); bps != 0 {
		return fmt.Sprintf("%d", bps)
	}
	return fmt.Sprintf("BaudRate(0x%04X)", uint16(b))
}

// BaudRateFromBps maps a line rate to its register code.
func BaudRateFromBps(bps int) (BaudRate, bool) {
	for code, v := range baudRates {
		if v == bps {
			return code, true
		}
	}
	return 0, false
}

// Parity is the high byte of RegParityStopBits.
type Parity uint8

const (
	ParityNone Parity = 0x00
	ParityEven Parity = 0x01
	ParityOdd  Parity = 0x02
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", uint8(p))
	}
}

// StopBits is the low byte of RegParityStopBits.
// The module encodes two stop bits as 3, not 2.
type StopBits uint8

const (
	StopBits1 StopBits = 0x01
	StopBits2 StopBits = 0x03
)

// Count returns the number of stop bits, 0 for an unknown code.
func (s StopBits) Count() int {
	switch s {
	case StopBits1:
		return 1
	case StopBits2:
		return 2
	default:
		return 0
	}
}

func (s StopBits) String() string {
	if n := s.Count(); n != 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("StopBits(%d)", uint8(s))
}

// SerialWord packs parity and stop bits the way RegParityStopBits stores them.
func SerialWord(p Parity, s StopBits) uint16 {
	return uint16(p)<<8 | uint16(s)
}

// BasicInfo is the identity/config block at 0x0000..0x0005.
type BasicInfo struct {
	PID      uint16   `json:"pid"`
	VID      uint16   `json:"vid"`
	Address  uint16   `json:"address"`
	BaudRate BaudRate `json:"baud_rate"`
	StopBits StopBits `json:"stop_bits"`
	Parity   Parity   `json:"parity"`
	Version  uint16   `json:"version"`
}

// FirmwareVersion renders Version one nibble per field: 0x1000 is "V1.0.0.0".
func (b BasicInfo) FirmwareVersion() string {
	v := b.Version
	return fmt.Sprintf("V%d.%d.%d.%d", v>>12&0xF, v>>8&0xF, v>>4&0xF, v&0xF)
}

// Target is one detected object.
type Target struct {
	Distance  uint16 `json:"distance"`
	Intensity uint16 `json:"intensity"`
}

// MeasurementData is the block at 0x0006..0x0010.
type MeasurementData struct {
	Count   uint16             `json:"count"`
	Targets [MaxTargets]Target `json:"targets"`
}

// Detected returns the targets the module reported, at most MaxTargets.
func (m MeasurementData) Detected() []Target {
	n := int(m.Count)
	if n > MaxTargets {
		n = MaxTargets
	}
	out := make([]Target, n)
	copy(out, m.Targets[:n])
	return out
}

// MeasurementConfig is the block at 0x0011..0x0016.
type MeasurementConfig struct {
	StartPosition  uint16 `json:"start_position"`
	StopPosition   uint16 `json:"stop_position"`
	StartThreshold uint16 `json:"start_threshold"`
	EndThreshold   uint16 `json:"end_threshold"`
	Sensitivity    uint16 `json:"sensitivity"`
	Offset         int16  `json:"offset"`
}

// DefaultMeasurementConfig is the factory measurement configuration.
func DefaultMeasurementConfig() MeasurementConfig {
	return MeasurementConfig{
		StartPosition:  0x00C8,
		StopPosition:   0x1770,
		StartThreshold: 0x0190,
		EndThreshold:   0x0190,
		Sensitivity:    0x0002,
		Offset:         0,
	}
}

// ---- register <-> struct ----

func decodeBasicInfo(r []uint16) BasicInfo {
	return BasicInfo{
		PID:      r[0],
		VID:      r[1],
		Address:  r[2],
		BaudRate: BaudRate(r[3]),
		Parity:   Parity(r[4] >> 8),
		StopBits: StopBits(r[4] & 0x00FF),
		Version:  r[5],
	}
}

func decodeMeasurementData(r []uint16) MeasurementData {
	m := MeasurementData{Count: r[0]}
	for i := 0; i < MaxTargets; i++ {
		m.Targets[i] = Target{
			Distance:  r[1+2*i],
			Intensity: r[2+2*i],
		}
	}
	return m
}

func decodeMeasurementConfig(r []uint16) MeasurementConfig {
	return MeasurementConfig{
		StartPosition:  r[0],
		StopPosition:   r[1],
		StartThreshold: r[2],
		EndThreshold:   r[3],
		Sensitivity:    r[4],
		Offset:         int16(r[5]),
	}
}

func encodeMeasurementConfig(c MeasurementConfig) []uint16 {
	return []uint16{
		c.StartPosition,
		c.StopPosition,
		c.StartThreshold,
		c.EndThreshold,
		c.Sensitivity,
		uint16(c.Offset),
	}
}
