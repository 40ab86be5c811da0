// internal/status/error.go
package status

import (
	"errors"
	"fmt"
)

// Error carries a transport status code.
// Cause is optional and only used for the message.
type Error struct {
	StatusCode uint16
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (code %d): %v", Name(e.StatusCode), e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("%s (code %d)", Name(e.StatusCode), e.StatusCode)
}

// Code returns the raw status code.
func (e *Error) Code() uint16 { return e.StatusCode }

func (e *Error) Unwrap() error { return e.Cause }

// coder is satisfied by any error that exposes a status code.
type coder interface{ Code() uint16 }

// New returns an *Error for code, wrapping cause (may be nil).
func New(code uint16, cause error) error {
	return &Error{StatusCode: code, Cause: cause}
}

// Code extracts a best-effort status code from an error without assuming concrete types.
// nil yields OK. An error that does not expose a code yields RecvError.
func Code(err error) uint16 {
	if err == nil {
		return OK
	}
	if code, ok := Lookup(err); ok {
		return code
	}
	return RecvError
}

// Lookup reports the status code carried by err, if any error in its chain has one.
func Lookup(err error) (uint16, bool) {
	var c coder
	if errors.As(err, &c) {
		return c.Code(), true
	}
	return 0, false
}

// Name returns a short human name for a status code.
func Name(code uint16) string {
	switch code {
	case OK:
		return "ok"
	case IllegalFunction:
		return "illegal function"
	case IllegalDataAddress:
		return "illegal data address"
	case IllegalDataValue:
		return "illegal data value"
	case SlaveFailure:
		return "slave failure"
	case CRCError:
		return "crc error"
	case RecvError:
		return "receive error"
	case MemoryError:
		return "memory error"
	case IDError:
		return "id error"
	default:
		return "unknown status"
	}
}

// HealthName returns a short human name for a health code.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}
