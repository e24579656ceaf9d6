package core

import (
	"errors"
	"testing"
)

func TestTakeIsOneShot(t *testing.T) {
	taken = 0
	defer func() { taken = 0 }()

	bus := newTestBus()
	p, err := TryTake(bus.reg)
	if err != nil || p == nil {
		t.Fatalf("first TryTake failed: %v", err)
	}

	if _, err := TryTake(bus.reg); !errors.Is(err, ErrTaken) {
		t.Errorf("second TryTake returned %v, want ErrTaken", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Take after TryTake should halt")
		}
	}()
	Take(bus.reg)
}

func TestPLICEnableSource(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)
	enable1 := uintptr(PLICBase + 0x2000 + 4)
	bus.poke(enable1, 0x10)

	p.PLIC.EnableSource(IRQUART0)

	if got := bus.value(enable1); got != 0x11 {
		t.Errorf("enable_0_1 = %#x, want 0x11", got)
	}
	if !p.PLIC.SourceEnabled(IRQUART0) {
		t.Error("UART0 source not reported enabled")
	}
	if p.PLIC.SourceEnabled(IRQUART0 + 1) {
		t.Error("neighbouring source reported enabled")
	}
}

func TestBindLayout(t *testing.T) {
	bus := newTestBus()
	p := Bind(bus.reg)

	regs := []struct {
		name string
		reg  Register
		addr uintptr
	}{
		{"sys_syscfg_8", p.SysSyscon.Syscfg8, SysSysconBase + 0x20},
		{"clk_u0_uart_apb", p.SysCRG.ClkU0UARTAPB, SysCRGBase + 0x248},
		{"clk_aon_apb", p.AonCRG.ClkAonAPB, AonCRGBase + 0x004},
		{"gpo_doen_10", p.SysPinctrl.GpoDoen[10], SysPinctrlBase + 0x028},
		{"gpo_dout_10", p.SysPinctrl.GpoDout[10], SysPinctrlBase + 0x068},
		{"gpi_1", p.SysPinctrl.Gpi[1], SysPinctrlBase + 0x084},
		{"ioirq_0", p.SysPinctrl.Ioirq0, SysPinctrlBase + 0x0DC},
		{"gpio_40", p.SysPinctrl.Padcfg[40], SysPinctrlBase + 0x120 + 40*4},
		{"enable_0_1", p.PLIC.Enable[1], PLICBase + 0x2004},
		{"uart0 lsr", p.UART0.LSR, UART0Base + UARTLSR},
	}
	for i, r := range regs {
		r.reg.Set(uint32(i + 1))
		if got := bus.value(r.addr); got != uint32(i+1) {
			t.Errorf("%s not at %#x", r.name, r.addr)
		}
	}
}
