package core

// write is one store seen by testBus
type write struct {
	addr  uintptr
	value uint32
}

// testBus is plain memory with a write trace. Registers that were never
// written read as fill.
type testBus struct {
	regs   map[uintptr]*testReg
	writes []write
	fill   uint32
}

type testReg struct {
	bus   *testBus
	addr  uintptr
	value uint32
}

func (r *testReg) Get() uint32 {
	return r.value
}

func (r *testReg) Set(v uint32) {
	r.value = v
	r.bus.writes = append(r.bus.writes, write{r.addr, v})
}

func newTestBus() *testBus {
	return &testBus{regs: make(map[uintptr]*testReg)}
}

func (b *testBus) reg(addr uintptr) Register {
	if r, ok := b.regs[addr]; ok {
		return r
	}
	r := &testReg{bus: b, addr: addr, value: b.fill}
	b.regs[addr] = r
	return r
}

func (b *testBus) value(addr uintptr) uint32 {
	return b.reg(addr).Get()
}

func (b *testBus) poke(addr uintptr, v uint32) {
	b.reg(addr).(*testReg).value = v
}

func (b *testBus) snapshot() map[uintptr]uint32 {
	out := make(map[uintptr]uint32, len(b.regs))
	for addr, r := range b.regs {
		out[addr] = r.value
	}
	return out
}

// writesTo returns the values stored to addr, in order
func (b *testBus) writesTo(addr uintptr) []uint32 {
	var out []uint32
	for _, w := range b.writes {
		if w.addr == addr {
			out = append(out, w.value)
		}
	}
	return out
}

// firstWrite returns the trace index of the first store to addr, or -1
func (b *testBus) firstWrite(addr uintptr) int {
	for i, w := range b.writes {
		if w.addr == addr {
			return i
		}
	}
	return -1
}

// lastWrite returns the trace index of the last store to addr, or -1
func (b *testBus) lastWrite(addr uintptr) int {
	for i := len(b.writes) - 1; i >= 0; i-- {
		if b.writes[i].addr == addr {
			return i
		}
	}
	return -1
}

// spinRecorder is a Delay that records spin counts instead of spinning
type spinRecorder struct {
	spins  []uint32
	onSpin func()
}

func (s *spinRecorder) Spin(n uint32) {
	s.spins = append(s.spins, n)
	if s.onSpin != nil {
		s.onSpin()
	}
}
