//go:build jh7110

package main

import (
	"runtime/volatile"
	"unsafe"

	"vf2shell/core"
)

func mmio(addr uintptr) core.Register {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// Standalone LED blinker. Runs on the boot clocks; no UART, no interrupts.
func main() {
	b := core.Blinky{
		Pinctrl: core.BindPinctrl(mmio),
		Delay:   core.BusySpin{},
	}
	b.Configure()
	b.Run()
}
