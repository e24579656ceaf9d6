package core

// BlinkTransitions is the number of LED level changes per interrupt
const BlinkTransitions = 100

// BlinkHandler is the UART0 interrupt body: a fixed LED pulse train
type BlinkHandler struct {
	LED   *LEDOwner
	Delay Delay
}

// Handle drives BlinkTransitions level changes starting with LEDHigh, each
// after a BlinkSpin delay, and returns with the LED low. It always runs to
// completion.
func (h *BlinkHandler) Handle() {
	l := h.LED.enter()
	defer h.LED.leave()

	level := LEDLow
	for i := 0; i < BlinkTransitions; i++ {
		h.Delay.Spin(BlinkSpin)
		if level == LEDLow {
			level = LEDHigh
		} else {
			level = LEDLow
		}
		l.Set(level)
	}
}
