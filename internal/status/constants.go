// internal/status/constants.go
package status

// Transport status codes.
// These values are defined by the Modbus exchange and MUST NOT be configurable.

// OK means the request/response exchange completed.
const OK uint16 = 0

// ---- DEVICE EXCEPTIONS (Modbus exception responses) ----

// IllegalFunction is returned when the device does not support the function code.
const IllegalFunction uint16 = 1

// IllegalDataAddress is returned when the register range is not mapped.
const IllegalDataAddress uint16 = 2

// IllegalDataValue is returned when the device rejects a written value.
const IllegalDataValue uint16 = 3

// SlaveFailure is returned when the device failed while serving the request.
const SlaveFailure uint16 = 4

// ---- LINK ERRORS (detected on this side of the wire) ----

// CRCError means the response frame failed its CRC check.
const CRCError uint16 = 8

// RecvError means no valid response was received (timeout, short frame, I/O).
const RecvError uint16 = 9

// MemoryError means a buffer could not be prepared for the exchange.
const MemoryError uint16 = 10

// IDError means the response came from another slave, or the request used the broadcast address.
const IDError uint16 = 11

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy device.
const HealthOK uint16 = 1

// HealthError represents a device error state.
const HealthError uint16 = 2

// MaxSecondsInError is the saturation point of Snapshot.SecondsInError.
const MaxSecondsInError uint16 = 65535
