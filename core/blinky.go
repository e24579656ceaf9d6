package core

// Blinky is the standalone LED demo: no clocks, no interrupts, no shell
type Blinky struct {
	Pinctrl *SysPinctrl
	Delay   Delay
}

// Configure makes the LED pad an interrupt-capable GPIO output
func (b *Blinky) Configure() {
	Modify(b.Pinctrl.Ioirq0, func(w *W) { w.SetBit(Ioirq0Gpen0) })
	SetDrive(b.Pinctrl, PadLED, DriveOutput)
}

// Step drives one full period: high for BlinkySpin iterations, then low
func (b *Blinky) Step() {
	SetFunction(b.Pinctrl, PadLED, GpoLEDBlinky)
	b.Delay.Spin(BlinkySpin)
	SetFunction(b.Pinctrl, PadLED, GpoLow)
	b.Delay.Spin(BlinkySpin)
}

// Run blinks forever
func (b *Blinky) Run() {
	for {
		b.Step()
	}
}
