package core

import "tinygo.org/x/drivers"

// UARTTransport runs the shell over any drivers.UART. Reads never block:
// Buffered is checked before each Read.
type UARTTransport struct {
	uart drivers.UART
	rx   [1]byte
	tx   [1]byte
}

// NewUARTTransport wraps u for the shell
func NewUARTTransport(u drivers.UART) *UARTTransport {
	return &UARTTransport{uart: u}
}

// ReadByte returns the next received byte or ErrWouldBlock
func (t *UARTTransport) ReadByte() (byte, error) {
	if t.uart.Buffered() == 0 {
		return 0, ErrWouldBlock
	}
	n, err := t.uart.Read(t.rx[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrWouldBlock
	}
	return t.rx[0], nil
}

// WriteByte sends c
func (t *UARTTransport) WriteByte(c byte) error {
	t.tx[0] = c
	_, err := t.uart.Write(t.tx[:])
	return err
}
