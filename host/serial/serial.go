// Package serial opens the host side of the board's UART0 console
package serial

import (
	"io"
)

// Port represents a serial port interface. The native implementation wraps
// github.com/tarm/serial; tests use in-memory pipes.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Parity of the serial frame
type Parity byte

const (
	ParityNone Parity = 'N'
	ParityOdd  Parity = 'O'
	ParityEven Parity = 'E'
)

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate; the board console runs at 115200
	Baud int

	// Frame format, 8N1 by default
	DataBits byte
	Parity   Parity
	StopBits byte

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int

	// LockDir holds the advisory lock taken while the port is open.
	// Empty means os.TempDir().
	LockDir string
}

// DefaultConfig returns the configuration of the VisionFive2 UART0 console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		DataBits:    8,
		Parity:      ParityNone,
		StopBits:    1,
		ReadTimeout: 100,
	}
}
