package core

// Spin counts used by the LED demos. How long they take depends on the core
// clock and on the code the compiler emits for the loop.
const (
	BlinkSpin  = 1_500_000 // per half-period inside the UART0 handler
	BlinkySpin = 750_000   // per level in the standalone blinky
)

// Delay is a calibrated busy-wait of a fixed number of empty iterations.
// It is the only timing primitive the firmware uses.
type Delay interface {
	Spin(iterations uint32)
}

// BusySpin is the hardware Delay
type BusySpin struct{}

// Spin runs iterations empty loop passes
func (BusySpin) Spin(iterations uint32) {
	for i := uint32(0); i < iterations; i++ {
		spinStep(i)
	}
}
