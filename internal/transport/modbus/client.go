// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"
	"github.com/goburrow/serial"

	"github.com/tamzrod/rs01/internal/status"
)

const (
	ModeRTU = "rtu" // RS-485 serial line
	ModeTCP = "tcp" // Modbus TCP gateway in front of the RS-485 line
)

// Config is minimal transport config.
type Config struct {
	Mode string

	// RTU
	Port     string
	BaudRate int
	DataBits int
	Parity   string // "N", "E", "O"
	StopBits int
	RS485    bool

	// TCP
	Endpoint string

	SlaveID uint8
	Timeout time.Duration

	// Logger receives goburrow's frame dumps. Nil disables them.
	Logger *log.Logger
}

// registerClient is the subset of modbus.Client the adapter uses.
type registerClient interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Client implements rs01.Transport on top of goburrow/modbus.
// It serializes requests because the slave id lives on the shared handler.
type Client struct {
	mu     sync.Mutex
	client registerClient
	closer func() error
}

// New creates a connected client. ONE connect attempt, no retries.
func New(cfg Config) (*Client, error) {
	switch cfg.Mode {
	case ModeRTU, "":
		return newRTU(cfg)
	case ModeTCP:
		return newTCP(cfg)
	default:
		return nil, fmt.Errorf("transport modbus: unsupported mode %q", cfg.Mode)
	}
}

func newRTU(cfg Config) (*Client, error) {
	if cfg.Port == "" {
		return nil, errors.New("transport modbus: serial port required")
	}

	h := modbus.NewRTUClientHandler(cfg.Port)
	h.Config = serial.Config{
		Address:  cfg.Port,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.Timeout,
		RS485:    serial.RS485Config{Enabled: cfg.RS485},
	}
	h.SlaveId = cfg.SlaveID
	h.Logger = cfg.Logger

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("transport modbus: open %s: %w", cfg.Port, err)
	}

	return &Client{
		client: modbus.NewClient(h),
		closer: h.Close,
	}, nil
}

func newTCP(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("transport modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.SlaveID
	h.Logger = cfg.Logger

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("transport modbus: dial %s: %w", cfg.Endpoint, err)
	}

	return &Client{
		client: modbus.NewClient(h),
		closer: h.Close,
	}, nil
}

// Close releases the serial port or TCP connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// ---- rs01.Transport ----

// ReadHoldingRegisters issues FC3 for len(dst) words and fills dst.
// dst is left untouched unless the full payload arrived.
func (c *Client) ReadHoldingRegisters(addr uint16, dst []uint16) error {
	if len(dst) == 0 {
		return status.New(status.MemoryError, errors.New("empty read buffer"))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.client.ReadHoldingRegisters(addr, uint16(len(dst)))
	if err != nil {
		return toStatus(err)
	}
	if len(raw) != 2*len(dst) {
		return status.New(status.RecvError, fmt.Errorf(
			"read addr=0x%04X: got %d bytes want %d", addr, len(raw), 2*len(dst),
		))
	}

	unpackRegisters(raw, dst)
	return nil
}

// WriteHoldingRegisters issues FC16 for len(src) words.
func (c *Client) WriteHoldingRegisters(addr uint16, src []uint16) error {
	if len(src) == 0 {
		return status.New(status.MemoryError, errors.New("empty write buffer"))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.client.WriteMultipleRegisters(addr, uint16(len(src)), packRegisters(src)); err != nil {
		return toStatus(err)
	}
	return nil
}

// toStatus classifies a goburrow error into a transport status code.
// goburrow only types exception responses; link errors are recognized by message.
func toStatus(err error) error {
	var me *modbus.ModbusError
	if errors.As(err, &me) {
		// Codes above 4 (acknowledge, busy, gateway) would collide with link codes.
		switch me.ExceptionCode {
		case modbus.ExceptionCodeIllegalFunction,
			modbus.ExceptionCodeIllegalDataAddress,
			modbus.ExceptionCodeIllegalDataValue,
			modbus.ExceptionCodeServerDeviceFailure:
			return status.New(uint16(me.ExceptionCode), err)
		default:
			return status.New(status.SlaveFailure, err)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "crc"):
		return status.New(status.CRCError, err)
	case strings.Contains(msg, "slave id"), strings.Contains(msg, "unit id"):
		return status.New(status.IDError, err)
	default:
		return status.New(status.RecvError, err)
	}
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

func unpackRegisters(data []byte, dst []uint16) {
	for i := range dst {
		dst[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
}
