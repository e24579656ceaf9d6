//go:build jh7110

package main

import (
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"vf2shell/core"
)

var sys *core.System

// mmio maps a physical register address onto a volatile word
func mmio(addr uintptr) core.Register {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

func main() {
	p := core.Take(mmio)

	// Clock tree, pins, gates, PLIC and UART0; prints the greeting
	sys = core.Boot(p, core.BusySpin{})

	// The handler body must not allocate: it only calls into the
	// preassembled BlinkHandler.
	interrupt.New(core.IRQUART0, handleUART0).Enable()

	sys.Console.Run()
}

func handleUART0(interrupt.Interrupt) {
	sys.Blink.Handle()
}
