package core

// Greeting is written once the UART is up
const Greeting = "Hello from VisionFive2!\n"

// System is the running shell firmware
type System struct {
	Peripherals *Peripherals
	UART        *UART
	LED         *LEDOwner
	Blink       *BlinkHandler
	Console     *Console
}

// Boot brings the SoC up in the order the UART depends on: clock tree, pin
// mux, peripheral clock gates, UART0 interrupt, then the UART itself. The
// caller registers Blink.Handle for IRQUART0 and then calls Console.Run.
func Boot(p *Peripherals, delay Delay) *System {
	ConfigureClockTree(p)
	ConfigurePins(p)
	EnablePeripheralClocks(p.SysCRG)
	p.PLIC.EnableSource(IRQUART0)
	DebugPrintln("[BOOT] uart0 irq enabled, enable_0_1=" + hex32(p.PLIC.Enable[IRQUART0/32].Get()))

	uart := NewUART(p.UART0, UARTTimeoutPolls, DefaultSerialConfig)
	_, _ = uart.WriteString(Greeting)

	led := NewLEDOwner(p.SysPinctrl)
	return &System{
		Peripherals: p,
		UART:        uart,
		LED:         led,
		Blink:       &BlinkHandler{LED: led, Delay: delay},
		Console:     NewConsole(NewUARTTransport(uart)),
	}
}
