package sim

import (
	"io"

	"vf2shell/core"
)

// uartFifoDepth matches the DW UART receive FIFO on the JH7110
const uartFifoDepth = 32

// LSR bits the device reports besides data-ready
const lsrTxIdle = 0x60 // THRE | TEMT

// uartDevice models the registers of a DW APB UART
type uartDevice struct {
	rx *Fifo
	tx io.Writer

	dll, dlh uint32
	ier      uint32
	lcr      uint32
	mcr      uint32
	fcr      uint32
}

func newUARTDevice(tx io.Writer) *uartDevice {
	if tx == nil {
		tx = io.Discard
	}
	return &uartDevice{
		rx: NewFifo(uartFifoDepth + 1),
		tx: tx,
	}
}

func (d *uartDevice) dlab() bool {
	return core.LCRDLAB.Extract(d.lcr) != 0
}

func (d *uartDevice) rxInterruptEnabled() bool {
	return core.IERRxData.Extract(d.ier) != 0
}

// Divisor returns the programmed baud divisor
func (d *uartDevice) divisor() uint32 {
	return d.dlh<<8 | d.dll
}

func (d *uartDevice) read(off uintptr) uint32 {
	switch off {
	case core.UARTData:
		if d.dlab() {
			return d.dll
		}
		b, _ := d.rx.Pop()
		return uint32(b)
	case core.UARTIER:
		if d.dlab() {
			return d.dlh
		}
		return d.ier
	case core.UARTFCR:
		// IIR: receive data available, or no interrupt pending
		if d.rxInterruptEnabled() && !d.rx.IsEmpty() {
			return 0xC4
		}
		return 0xC1
	case core.UARTLCR:
		return d.lcr
	case core.UARTMCR:
		return d.mcr
	case core.UARTLSR:
		v := uint32(lsrTxIdle)
		if !d.rx.IsEmpty() {
			v |= core.LSRDataReady.Mask()
		}
		return v
	}
	return 0
}

func (d *uartDevice) write(off uintptr, v uint32) {
	switch off {
	case core.UARTData:
		if d.dlab() {
			d.dll = v & 0xFF
			return
		}
		_, _ = d.tx.Write([]byte{byte(v)})
	case core.UARTIER:
		if d.dlab() {
			d.dlh = v & 0xFF
			return
		}
		d.ier = v & 0xFF
	case core.UARTFCR:
		d.fcr = v
		if core.FCRRxReset.Extract(v) != 0 {
			d.rx.Reset()
		}
	case core.UARTLCR:
		d.lcr = v & 0xFF
	case core.UARTMCR:
		d.mcr = v
	}
}

// uartReg is one UART0 register on the bus
type uartReg struct {
	bus  *Bus
	off  uintptr
	addr uintptr
}

func (r *uartReg) Get() uint32 {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	return r.bus.uart.read(r.off)
}

func (r *uartReg) Set(v uint32) {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	r.bus.uart.write(r.off, v)
	r.bus.record(r.addr, v)
}

// UARTDivisor returns the baud divisor UART0 was programmed with
func (b *Bus) UARTDivisor() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uart.divisor()
}

// UARTLineControl returns the UART0 LCR value
func (b *Bus) UARTLineControl() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uart.lcr
}
