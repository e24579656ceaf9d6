//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// interruptMask stands in for the global interrupt enable on regular Go.
// The simulator runs the UART0 handler on its own goroutine, which takes
// the same lock on entry. Not reentrant.
var interruptMask sync.Mutex

// disableInterrupts masks the simulated interrupt
func disableInterrupts() State {
	interruptMask.Lock()
	return 0
}

// restoreInterrupts unmasks the simulated interrupt
func restoreInterrupts(state State) {
	interruptMask.Unlock()
}

// enterInterrupt blocks until the foreground is outside its critical section
func enterInterrupt() {
	interruptMask.Lock()
}

// leaveInterrupt ends a simulated interrupt
func leaveInterrupt() {
	interruptMask.Unlock()
}
