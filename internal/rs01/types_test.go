// internal/rs01/types_test.go
package rs01

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaudRate(t *testing.T) {
	assert.Equal(t, 115200, Baud115200.Bps())
	assert.Equal(t, "1000000", Baud1000000.String())
	assert.Equal(t, 0, BaudRate(0).Bps())
	assert.Equal(t, "BaudRate(0x000A)", BaudRate(0x0A).String())

	code, ok := BaudRateFromBps(9600)
	assert.True(t, ok)
	assert.Equal(t, Baud9600, code)

	_, ok = BaudRateFromBps(12345)
	assert.False(t, ok)
}

func TestSerialWord(t *testing.T) {
	assert.Equal(t, uint16(0x0001), SerialWord(ParityNone, StopBits1))
	assert.Equal(t, uint16(0x0203), SerialWord(ParityOdd, StopBits2))

	b := decodeBasicInfo([]uint16{0, 0, 0, 0, 0x0103, 0})
	assert.Equal(t, ParityEven, b.Parity)
	assert.Equal(t, StopBits2, b.StopBits)
	assert.Equal(t, 2, b.StopBits.Count())
}

func TestFirmwareVersion(t *testing.T) {
	assert.Equal(t, "V1.2.3.4", BasicInfo{Version: 0x1234}.FirmwareVersion())
}
