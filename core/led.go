package core

import "sync/atomic"

// LED levels driven by the UART0 handler
const (
	LEDHigh = GpoLEDHandler
	LEDLow  = GpoLow
)

// LEDLine is write access to the LED pad's output select. Only the current
// owner of the LEDOwner token holds one.
type LEDLine struct {
	pc *SysPinctrl
}

// Set drives the LED pad with level
func (l *LEDLine) Set(level GpoFunction) {
	SetFunction(l.pc, PadLED, level)
}

// Level returns the code currently selected for the LED pad
func (l *LEDLine) Level() GpoFunction {
	reg, f := l.pc.DoutReg(PadLED)
	return GpoFunction(Read(reg, f))
}

const (
	ownerNone uint32 = iota
	ownerForeground
	ownerInterrupt
)

// LEDOwner is the owner token of the gpo_dout_40_43 register. The UART0
// handler holds it for the length of one pulse train; foreground code holds
// it only with interrupts masked. Touching the register any other way is a
// bug, and a second concurrent acquire panics.
type LEDOwner struct {
	line  LEDLine
	owner uint32
}

// NewLEDOwner creates the token for the LED on pc
func NewLEDOwner(pc *SysPinctrl) *LEDOwner {
	return &LEDOwner{line: LEDLine{pc: pc}}
}

// Foreground runs fn with interrupts masked and the token held
func (o *LEDOwner) Foreground(fn func(l *LEDLine)) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	o.acquire(ownerForeground)
	defer o.release()

	fn(&o.line)
}

// enter takes the token from interrupt context. Callers must defer leave.
// No closure here: the handler path must not allocate.
func (o *LEDOwner) enter() *LEDLine {
	enterInterrupt()
	o.acquire(ownerInterrupt)
	return &o.line
}

func (o *LEDOwner) leave() {
	o.release()
	leaveInterrupt()
}

func (o *LEDOwner) acquire(who uint32) {
	if !atomic.CompareAndSwapUint32(&o.owner, ownerNone, who) {
		panic("led register already owned")
	}
}

func (o *LEDOwner) release() {
	atomic.StoreUint32(&o.owner, ownerNone)
}
