// internal/rs01/registers.go
package rs01

// Register map of the RS01 ranging module.
// Addresses are protocol-locked; one register is one 16-bit word.

// PID is the product identifier the module reports at RegPID.
const PID uint16 = 0x01E9

// VID is the vendor identifier reported at RegVID.
const VID uint16 = 0x3343

// DefaultAddress is the factory Modbus slave address.
const DefaultAddress uint16 = 0x000E

// ---- BASIC INFORMATION ----

const (
	RegPID             uint16 = 0x0000
	RegVID             uint16 = 0x0001
	RegAddress         uint16 = 0x0002
	RegBaudRate        uint16 = 0x0003
	RegParityStopBits  uint16 = 0x0004
	RegFirmwareVersion uint16 = 0x0005
)

const basicInfoRegisters = 6

// ---- MEASUREMENT DATA ----

const (
	RegTargetCount uint16 = 0x0006

	// RegTargetBase is the distance of target 1. Target n (0-based) lives at
	// RegTargetBase+2n (distance) and RegTargetBase+2n+1 (intensity).
	RegTargetBase uint16 = 0x0007

	// MaxTargets is the number of (distance, intensity) pairs the module reports.
	MaxTargets = 5

	measurementDataRegisters = 1 + 2*MaxTargets
)

// ---- MEASUREMENT CONFIGURATION ----

const (
	RegStartPosition    uint16 = 0x0011
	RegStopPosition     uint16 = 0x0012
	RegStartThreshold   uint16 = 0x0013
	RegEndThreshold     uint16 = 0x0014
	RegSensitivity      uint16 = 0x0015
	RegComparisonOffset uint16 = 0x0016
)

const measurementConfigRegisters = 6

// ---- CONTROL ----

// RegFactoryReset restores factory settings when FactoryResetValue is written to it.
const RegFactoryReset uint16 = 0x0017

// FactoryResetValue is the sentinel written to RegFactoryReset.
const FactoryResetValue uint16 = 0x0000
