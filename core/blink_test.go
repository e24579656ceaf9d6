package core

import "testing"

const addrDout40 = SysPinctrlBase + 0x040 + 10*4

func TestBlinkHandlerTransitions(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)
	delay := &spinRecorder{}
	h := &BlinkHandler{LED: NewLEDOwner(p.SysPinctrl), Delay: delay}
	_, field := p.SysPinctrl.DoutReg(PadLED)

	h.Handle()

	stores := bus.writesTo(addrDout40)
	if len(stores) != BlinkTransitions {
		t.Fatalf("expected %d LED stores, got %d", BlinkTransitions, len(stores))
	}
	for i, v := range stores {
		want := LEDHigh
		if i%2 == 1 {
			want = LEDLow
		}
		if got := GpoFunction(field.Extract(v)); got != want {
			t.Errorf("transition %d = %#b, want %#b", i, got, want)
		}
	}
	if got := h.LED.line.Level(); got != LEDLow {
		t.Errorf("handler returned with LED at %#b, want low", got)
	}

	if len(delay.spins) != BlinkTransitions {
		t.Fatalf("expected %d spins, got %d", BlinkTransitions, len(delay.spins))
	}
	for i, n := range delay.spins {
		if n != BlinkSpin {
			t.Errorf("spin %d = %d, want %d", i, n, BlinkSpin)
		}
	}
}

func TestBlinkHandlerSpinsBeforeEachTransition(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)
	delay := &spinRecorder{}
	delay.onSpin = func() {
		// Stores so far must equal spins completed before this one
		if got, want := len(bus.writesTo(addrDout40)), len(delay.spins)-1; got != want {
			t.Fatalf("spin %d saw %d LED stores, want %d", len(delay.spins), got, want)
		}
	}
	h := &BlinkHandler{LED: NewLEDOwner(p.SysPinctrl), Delay: delay}

	h.Handle()
}

func TestBlinkHandlerKeepsSiblingPads(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)
	reg, f41 := p.SysPinctrl.DoutReg(41)
	Modify(reg, func(w *W) { w.Set(f41, 0x33) })

	h := &BlinkHandler{LED: NewLEDOwner(p.SysPinctrl), Delay: &spinRecorder{}}
	h.Handle()

	if got := Read(reg, f41); got != 0x33 {
		t.Errorf("dout_41 = %#x, want 0x33", got)
	}
}

func TestLEDOwnerForeground(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)
	o := NewLEDOwner(p.SysPinctrl)

	o.Foreground(func(l *LEDLine) {
		l.Set(LEDHigh)
	})
	if got := o.line.Level(); got != LEDHigh {
		t.Errorf("LED = %#b, want high", got)
	}

	// The token is free again, so the handler can run
	h := &BlinkHandler{LED: o, Delay: &spinRecorder{}}
	h.Handle()
	if got := o.line.Level(); got != LEDLow {
		t.Errorf("LED = %#b, want low", got)
	}
}

func TestLEDOwnerRejectsSecondOwner(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)
	o := NewLEDOwner(p.SysPinctrl)

	// Simulate the handler holding the token
	o.acquire(ownerInterrupt)
	defer o.release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic when the foreground takes an owned token")
		}
	}()
	o.Foreground(func(l *LEDLine) {
		l.Set(LEDHigh)
	})
}

func TestBlinkyAlternates(t *testing.T) {
	bus := newTestBus()
	pc := BindPinctrl(bus.reg)
	_, field := pc.DoutReg(PadLED)

	var levels []uint32
	delay := &spinRecorder{}
	delay.onSpin = func() {
		levels = append(levels, field.Extract(bus.value(addrDout40)))
	}
	b := &Blinky{Pinctrl: pc, Delay: delay}
	b.Configure()

	if got := Read(pc.Ioirq0, Ioirq0Gpen0); got != 1 {
		t.Error("gpen_0 not set")
	}
	reg, doen := pc.DoenReg(PadLED)
	if got := Read(reg, doen); got != uint32(DriveOutput) {
		t.Errorf("doen_40 = %#b, want %#b", got, DriveOutput)
	}

	for _, steps := range []int{1, 2, 7} {
		levels = nil
		delay.spins = nil
		for i := 0; i < steps; i++ {
			b.Step()
		}

		if len(levels) != 2*steps {
			t.Fatalf("%d steps: expected %d spins, got %d", steps, 2*steps, len(levels))
		}
		for i, lvl := range levels {
			want := uint32(0b01)
			if i%2 == 1 {
				want = 0b00
			}
			if lvl != want {
				t.Errorf("%d steps: level during spin %d = %#b, want %#b", steps, i, lvl, want)
			}
		}
		for i, n := range delay.spins {
			if n != BlinkySpin {
				t.Errorf("spin %d = %d, want %d", i, n, BlinkySpin)
			}
		}
	}
}

func TestBusySpin(t *testing.T) {
	BusySpin{}.Spin(10)
	if spinCounter != 9 {
		t.Errorf("spinCounter = %d, want 9", spinCounter)
	}
	BusySpin{}.Spin(0)
}
