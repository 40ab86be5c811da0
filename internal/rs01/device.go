// internal/rs01/device.go
package rs01

import (
	"errors"
	"fmt"
)

// ErrDataBus reports that the identity read at Begin could not complete.
var ErrDataBus = errors.New("rs01: data bus error")

// ErrICVersion reports that the device answered with a foreign product id.
var ErrICVersion = errors.New("rs01: product id mismatch")

// Transport is the register exchange the device facade needs.
// A nil error means status 0. A non-nil error carries the transport's status code
// and is handed back to callers untouched.
type Transport interface {
	// ReadHoldingRegisters fills exactly len(dst) words starting at addr.
	ReadHoldingRegisters(addr uint16, dst []uint16) error
	// WriteHoldingRegisters writes len(src) words starting at addr.
	WriteHoldingRegisters(addr uint16, src []uint16) error
}

// Device is a register-level facade over one RS01 module.
// One call is one request/response exchange. Not safe for concurrent use.
type Device struct {
	tr Transport

	basic  BasicInfo
	data   MeasurementData
	config MeasurementConfig
}

// New binds a device to its transport. No I/O is performed.
func New(tr Transport) *Device {
	return &Device{
		tr:     tr,
		config: DefaultMeasurementConfig(),
	}
}

// Begin performs one identity read and checks the product id.
// The returned error matches ErrDataBus or ErrICVersion.
func (d *Device) Begin() error {
	var pid [1]uint16
	if err := d.tr.ReadHoldingRegisters(RegPID, pid[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrDataBus, err)
	}
	if pid[0] != PID {
		return fmt.Errorf("%w: got=0x%04X want=0x%04X", ErrICVersion, pid[0], PID)
	}
	return nil
}

// ---- refresh ----
// Each refresh reads into a scratch buffer and commits only on success.

// RefreshBasicInfo re-reads 0x0000..0x0005 into the BasicInfo snapshot.
func (d *Device) RefreshBasicInfo() error {
	regs := make([]uint16, basicInfoRegisters)
	if err := d.tr.ReadHoldingRegisters(RegPID, regs); err != nil {
		return err
	}
	d.basic = decodeBasicInfo(regs)
	return nil
}

// RefreshMeasurementData re-reads 0x0006..0x0010 into the MeasurementData snapshot.
func (d *Device) RefreshMeasurementData() error {
	regs := make([]uint16, measurementDataRegisters)
	if err := d.tr.ReadHoldingRegisters(RegTargetCount, regs); err != nil {
		return err
	}
	d.data = decodeMeasurementData(regs)
	return nil
}

// RefreshMeasurementConfig re-reads 0x0011..0x0016 into the MeasurementConfig snapshot.
func (d *Device) RefreshMeasurementConfig() error {
	regs := make([]uint16, measurementConfigRegisters)
	if err := d.tr.ReadHoldingRegisters(RegStartPosition, regs); err != nil {
		return err
	}
	d.config = decodeMeasurementConfig(regs)
	return nil
}

// ---- snapshots ----

// BasicInfo returns the snapshot from the last successful RefreshBasicInfo.
func (d *Device) BasicInfo() BasicInfo { return d.basic }

// MeasurementData returns the snapshot from the last successful RefreshMeasurementData.
func (d *Device) MeasurementData() MeasurementData { return d.data }

// MeasurementConfig returns the snapshot from the last successful RefreshMeasurementConfig,
// or the factory defaults before the first one.
func (d *Device) MeasurementConfig() MeasurementConfig { return d.config }

// ---- setters ----
// Values are passed through as-is; the firmware rejects or clamps out-of-range input.
// A nil error means the write was acknowledged, not that the setting is active:
// address, baud rate and serial format apply after a power cycle.

// SetAddress writes the Modbus slave address (1..247 on the device).
func (d *Device) SetAddress(addr uint16) error {
	return d.tr.WriteHoldingRegisters(RegAddress, []uint16{addr})
}

// SetBaudRate writes the baud rate code.
func (d *Device) SetBaudRate(b BaudRate) error {
	return d.tr.WriteHoldingRegisters(RegBaudRate, []uint16{uint16(b)})
}

// SetParityStopBits writes parity and stop bits as one word.
func (d *Device) SetParityStopBits(p Parity, s StopBits) error {
	return d.tr.WriteHoldingRegisters(RegParityStopBits, []uint16{SerialWord(p, s)})
}

// SetMeasurementWindow writes the start and stop positions.
func (d *Device) SetMeasurementWindow(start, stop uint16) error {
	return d.tr.WriteHoldingRegisters(RegStartPosition, []uint16{start, stop})
}

// SetThresholds writes the start and end thresholds.
func (d *Device) SetThresholds(start, end uint16) error {
	return d.tr.WriteHoldingRegisters(RegStartThreshold, []uint16{start, end})
}

// SetSensitivity writes the module sensitivity.
func (d *Device) SetSensitivity(s uint16) error {
	return d.tr.WriteHoldingRegisters(RegSensitivity, []uint16{s})
}

// SetComparisonOffset writes the signed comparison offset.
func (d *Device) SetComparisonOffset(off int16) error {
	return d.tr.WriteHoldingRegisters(RegComparisonOffset, []uint16{uint16(off)})
}

// SetMeasurementConfig writes the whole measurement configuration block.
func (d *Device) SetMeasurementConfig(c MeasurementConfig) error {
	return d.tr.WriteHoldingRegisters(RegStartPosition, encodeMeasurementConfig(c))
}

// RestoreFactorySettings triggers a factory reset. There is no read-back.
func (d *Device) RestoreFactorySettings() error {
	return d.tr.WriteHoldingRegisters(RegFactoryReset, []uint16{FactoryResetValue})
}
