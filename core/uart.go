package core

import (
	"errors"

	"vf2shell/shell"
)

var (
	// ErrWouldBlock is returned by ReadByte when no byte has arrived
	ErrWouldBlock = shell.ErrWouldBlock

	// ErrTimeout is returned when the transmitter stays busy for the whole timeout
	ErrTimeout = errors.New("uart: transmit timeout")
)

// DataLength is the number of data bits per character
type DataLength uint8

const (
	DataLen5 DataLength = iota
	DataLen6
	DataLen7
	DataLen8
)

// Stop is the number of stop bits
type Stop uint8

const (
	StopOne Stop = iota
	StopTwo
)

// Parity is the UART parity mode
type Parity uint8

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// BaudRate is a line rate in bits per second
type BaudRate uint32

const (
	B9600   BaudRate = 9600
	B19200  BaudRate = 19200
	B38400  BaudRate = 38400
	B57600  BaudRate = 57600
	B115200 BaudRate = 115200
)

// SerialConfig describes the line format. ClkHz must be the frequency the
// UART is actually clocked at, or every baud rate comes out wrong.
type SerialConfig struct {
	DataLen DataLength
	Stop    Stop
	Parity  Parity
	Baud    BaudRate
	ClkHz   uint32
}

// DefaultSerialConfig is 115200 8N1 against UARTClockHz
var DefaultSerialConfig = SerialConfig{
	DataLen: DataLen8,
	Stop:    StopOne,
	Parity:  ParityNone,
	Baud:    B115200,
	ClkHz:   UARTClockHz,
}

// UARTTimeoutPolls bounds how long WriteByte waits for the transmitter,
// counted in reads of LSR
const UARTTimeoutPolls = 1000

// Divisor returns the 16x oversampling baud divisor
func (c SerialConfig) Divisor() uint32 {
	if c.Baud == 0 {
		return 0
	}
	return c.ClkHz / (16 * uint32(c.Baud))
}

// UART is a polled DW APB UART. It implements drivers.UART; the shell
// reaches it through UARTTransport.
type UART struct {
	regs    *UARTRegs
	timeout uint32
}

// NewUART programs the line format and baud divisor and enables the
// receive-data interrupt. WriteByte gives up after timeoutPolls extra
// reads of LSR.
func NewUART(regs *UARTRegs, timeoutPolls uint32, cfg SerialConfig) *UART {
	u := &UART{regs: regs, timeout: timeoutPolls}

	// FCR is write-only; reading that address returns IIR
	var fcr W
	fcr.SetBit(FCRFifoEnable).SetBit(FCRRxReset).SetBit(FCRTxReset)
	regs.FCR.Set(fcr.Bits())

	div := cfg.Divisor()
	Modify(regs.LCR, func(w *W) { w.SetBit(LCRDLAB) })
	Modify(regs.Data, func(w *W) { w.Set(DivLatch, div&0xFF) })
	Modify(regs.IER, func(w *W) { w.Set(DivLatch, (div>>8)&0xFF) })

	Modify(regs.LCR, func(w *W) {
		w.Set(LCRDataLen, uint32(cfg.DataLen)).
			Bool(LCRStop, cfg.Stop == StopTwo).
			Bool(LCRParity, cfg.Parity != ParityNone).
			Bool(LCREven, cfg.Parity == ParityEven).
			ClearBit(LCRDLAB)
	})

	Modify(regs.IER, func(w *W) {
		w.Set(DivLatch, 0).SetBit(IERRxData)
	})

	return u
}

// ReadByte returns the next received byte or ErrWouldBlock
func (u *UART) ReadByte() (byte, error) {
	if Read(u.regs.LSR, LSRDataReady) == 0 {
		return 0, ErrWouldBlock
	}
	return byte(u.regs.Data.Get()), nil
}

// WriteByte waits for the transmit holding register and sends c
func (u *UART) WriteByte(c byte) error {
	for i := uint32(0); i <= u.timeout; i++ {
		if Read(u.regs.LSR, LSRTxEmpty) != 0 {
			u.regs.Data.Set(uint32(c))
			return nil
		}
	}
	return ErrTimeout
}

// Buffered returns 1 when a received byte is waiting
func (u *UART) Buffered() int {
	return int(Read(u.regs.LSR, LSRDataReady))
}

// Read copies received bytes into p without blocking
func (u *UART) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		c, err := u.ReadByte()
		if err != nil {
			break
		}
		p[n] = c
		n++
	}
	return n, nil
}

// Write sends p, stopping at the first transmit timeout
func (u *UART) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := u.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString sends s
func (u *UART) WriteString(s string) (int, error) {
	return u.Write([]byte(s))
}
