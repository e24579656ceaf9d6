// Package sim models the parts of the JH7110 the firmware touches so the
// bring-up sequence and the shell can run on a development host. Plain
// registers are memory with a write trace; UART0 and the PLIC behave like
// the hardware closely enough for the shell and the UART0 interrupt.
package sim

import (
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"vf2shell/core"
)

// Write is one register store
type Write struct {
	Addr  uintptr
	Value uint32
}

// Bus is a simulated JH7110 register space
type Bus struct {
	mu      sync.Mutex
	regs    map[uintptr]uint32
	trace   []Write
	tracing bool

	uart *uartDevice

	handler func()
	running int32
	done    chan struct{}
}

// NewBus creates a bus whose UART0 transmits to tx
func NewBus(tx io.Writer) *Bus {
	return &Bus{
		regs:    make(map[uintptr]uint32),
		tracing: true,
		uart:    newUARTDevice(tx),
		done:    make(chan struct{}, 1),
	}
}

// Register returns the register at addr. It has the core.Bus signature.
func (b *Bus) Register(addr uintptr) core.Register {
	if addr >= core.UART0Base && addr < core.UART0Base+0x100 {
		return &uartReg{bus: b, off: addr - core.UART0Base, addr: addr}
	}
	return &memReg{bus: b, addr: addr}
}

// SetTracing turns the write trace on or off
func (b *Bus) SetTracing(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tracing = on
}

// Trace returns a copy of every store so far
func (b *Bus) Trace() []Write {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Write, len(b.trace))
	copy(out, b.trace)
	return out
}

// ResetTrace drops the recorded stores
func (b *Bus) ResetTrace() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trace = nil
}

// Value returns the current value of a plain register
func (b *Bus) Value(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.regs[addr]
}

// Addresses returns every plain register that has been stored to, sorted
func (b *Bus) Addresses() []uintptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]uintptr, 0, len(b.regs))
	for addr := range b.regs {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (b *Bus) record(addr uintptr, v uint32) {
	if b.tracing {
		b.trace = append(b.trace, Write{Addr: addr, Value: v})
	}
}

// OnUART0Interrupt registers the handler run when UART0 raises IRQUART0
func (b *Bus) OnUART0Interrupt(handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = handler
}

// Receive puts data on the UART0 receive line. If the receive interrupt is
// enabled in the UART and in the PLIC, the handler runs on its own
// goroutine; a raise while the handler is still running is dropped.
func (b *Bus) Receive(data []byte) int {
	b.mu.Lock()
	n := b.uart.rx.Write(data)
	raise := n > 0 && b.handler != nil && b.uart.rxInterruptEnabled() && b.sourceEnabled(core.IRQUART0)
	handler := b.handler
	b.mu.Unlock()

	if raise && atomic.CompareAndSwapInt32(&b.running, 0, 1) {
		go func() {
			defer func() {
				atomic.StoreInt32(&b.running, 0)
				select {
				case b.done <- struct{}{}:
				default:
				}
			}()
			handler()
		}()
	}
	return n
}

// InterruptDone returns a channel that receives after each handler run
func (b *Bus) InterruptDone() <-chan struct{} {
	return b.done
}

// sourceEnabled must be called with mu held
func (b *Bus) sourceEnabled(irq uint32) bool {
	addr := uintptr(core.PLICBase + 0x2000 + (irq/32)*4)
	return b.regs[addr]&(1<<(irq%32)) != 0
}

// memReg is a plain read/write register
type memReg struct {
	bus  *Bus
	addr uintptr
}

func (r *memReg) Get() uint32 {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	return r.bus.regs[r.addr]
}

func (r *memReg) Set(v uint32) {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	r.bus.regs[r.addr] = v
	r.bus.record(r.addr, v)
}
