package sim

// Fifo is a circular byte buffer modelling the UART receive FIFO
type Fifo struct {
	buf   []byte
	read  int
	write int
	size  int
}

// NewFifo creates a FIFO that holds capacity-1 bytes
func NewFifo(capacity int) *Fifo {
	return &Fifo{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data and returns how many bytes fit
func (f *Fifo) Write(data []byte) int {
	written := 0
	for _, b := range data {
		nextWrite := (f.write + 1) % f.size
		if nextWrite == f.read {
			// Overrun: the rest is dropped like on the wire
			break
		}
		f.buf[f.write] = b
		f.write = nextWrite
		written++
	}
	return written
}

// Pop removes and returns the oldest byte
func (f *Fifo) Pop() (byte, bool) {
	if f.read == f.write {
		return 0, false
	}
	b := f.buf[f.read]
	f.read = (f.read + 1) % f.size
	return b, true
}

// Available returns the number of bytes waiting
func (f *Fifo) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// IsEmpty returns true if no byte is waiting
func (f *Fifo) IsEmpty() bool {
	return f.read == f.write
}

// Reset drops every waiting byte
func (f *Fifo) Reset() {
	f.read = 0
	f.write = 0
}
