package core

// Interrupt sources
const (
	IRQUART0 = 32
)

// EnableSource enables delivery of irq to hart context 0. The other enable
// bits in the same word are preserved.
func (p *PLIC) EnableSource(irq uint32) {
	bit := Bit(uint8(irq % 32))
	Modify(p.Enable[irq/32], func(w *W) { w.SetBit(bit) })
}

// SourceEnabled reports whether irq is enabled for hart context 0
func (p *PLIC) SourceEnabled(irq uint32) bool {
	return Read(p.Enable[irq/32], Bit(uint8(irq%32))) != 0
}
