package core

// PllFreq holds the divider settings for one PLL output frequency.
// Postdiv1 is stored pre-shifted: the value committed to hardware is
// Postdiv1 >> 1.
type PllFreq struct {
	Prediv   uint8
	Fbdiv    uint16
	Postdiv1 uint8
	Dacpd    bool
	Dsmpd    bool
}

// PLL profiles for a 24MHz reference oscillator
var (
	PLL0_1_000_000_000 = PllFreq{
		Prediv:   3,
		Fbdiv:    125,
		Postdiv1: 1,
		Dacpd:    true,
		Dsmpd:    true,
	}

	PLL2_1_188_000_000 = PllFreq{
		Prediv:   3,
		Fbdiv:    99,
		Postdiv1: 1,
		Dacpd:    true,
		Dsmpd:    true,
	}
)

// PostdivCode returns the post-divider field value written to hardware
func (f PllFreq) PostdivCode() uint32 {
	return uint32(f.Postdiv1 >> 1)
}

// Clock mux source indices
const (
	CPURootPLL0        = 0 // clk_cpu_root <- pll0
	BusRootPLL2        = 1 // clk_bus_root <- pll2
	PeripheralRootPLL2 = 1 // clk_peripheral_root <- pll2
	AonAPBOsc          = 1 // clk_aon_apb <- clk_osc
)

// UARTClockHz is the reference clock UART0 is programmed against
const UARTClockHz = 1_000_000_000

// pllRegs describes where one PLL keeps its controls
type pllRegs struct {
	name string

	pdReg    Register
	pd       Field
	calReg   Register
	dacpd    Field
	dsmpd    Field
	preReg   Register
	prediv   Field
	fbReg    Register
	fbdiv    Field
	postReg  Register
	postdiv1 Field
}

func pll0Regs(sys *SysSyscon) pllRegs {
	return pllRegs{
		name:     "pll0",
		pdReg:    sys.Syscfg8,
		pd:       Syscfg8Pll0Pd,
		calReg:   sys.Syscfg6,
		dacpd:    Syscfg6Pll0Dacpd,
		dsmpd:    Syscfg6Pll0Dsmpd,
		preReg:   sys.Syscfg9,
		prediv:   Syscfg9Pll0Prediv,
		fbReg:    sys.Syscfg7,
		fbdiv:    Syscfg7Pll0Fbdiv,
		postReg:  sys.Syscfg8,
		postdiv1: Syscfg8Pll0Postdiv1,
	}
}

func pll2Regs(sys *SysSyscon) pllRegs {
	return pllRegs{
		name:     "pll2",
		pdReg:    sys.Syscfg12,
		pd:       Syscfg12Pll2Pd,
		calReg:   sys.Syscfg11,
		dacpd:    Syscfg11Pll2Dacpd,
		dsmpd:    Syscfg11Pll2Dsmpd,
		preReg:   sys.Syscfg13,
		prediv:   Syscfg13Pll2Prediv,
		fbReg:    sys.Syscfg11,
		fbdiv:    Syscfg11Pll2Fbdiv,
		postReg:  sys.Syscfg12,
		postdiv1: Syscfg12Pll2Postdiv1,
	}
}

// setPLLFreq reprograms a PLL. The PLL is powered down before any divider
// changes and powered up again by the same store that commits postdiv1.
func setPLLFreq(r pllRegs, f PllFreq) {
	Modify(r.pdReg, func(w *W) {
		w.SetBit(r.pd)
	})

	Modify(r.calReg, func(w *W) {
		w.Bool(r.dacpd, f.Dacpd).Bool(r.dsmpd, f.Dsmpd)
	})

	Modify(r.preReg, func(w *W) {
		w.Set(r.prediv, uint32(f.Prediv))
	})

	Modify(r.fbReg, func(w *W) {
		w.Set(r.fbdiv, uint32(f.Fbdiv))
	})

	// postdiv1 is halved by convention; every shipped profile uses 1,
	// which commits 0.
	Modify(r.postReg, func(w *W) {
		w.Set(r.postdiv1, f.PostdivCode()).ClearBit(r.pd)
	})

	DebugPrintln("[CLK] " + r.name + " prediv=" + utoa(uint32(f.Prediv)) +
		" fbdiv=" + utoa(uint32(f.Fbdiv)) + " postdiv=" + utoa(f.PostdivCode()))
}

// SetPLL0Freq sets the frequency of PLL0, the CPU clock PLL
func SetPLL0Freq(sys *SysSyscon, f PllFreq) {
	setPLLFreq(pll0Regs(sys), f)
}

// SetPLL2Freq sets the frequency of PLL2, the bus and peripheral clock PLL
func SetPLL2Freq(sys *SysSyscon, f PllFreq) {
	setPLLFreq(pll2Regs(sys), f)
}

// SelectClockSources points each root clock at its source.
// The source PLLs must already be running.
func SelectClockSources(crg *SysCRG, aon *AonCRG) {
	Modify(crg.ClkCPURoot, func(w *W) { w.Set(ClkMuxSel, CPURootPLL0) })
	Modify(crg.ClkBusRoot, func(w *W) { w.Set(ClkMuxSel, BusRootPLL2) })
	Modify(crg.ClkPeripheralRoot, func(w *W) { w.Set(ClkMuxSel, PeripheralRootPLL2) })
	Modify(aon.ClkAonAPB, func(w *W) { w.Set(ClkMuxSel, AonAPBOsc) })
}

// ConfigureClockTree programs PLL0 and PLL2 and then the root clock muxes
func ConfigureClockTree(p *Peripherals) {
	SetPLL0Freq(p.SysSyscon, PLL0_1_000_000_000)
	SetPLL2Freq(p.SysSyscon, PLL2_1_188_000_000)
	SelectClockSources(p.SysCRG, p.AonCRG)
}

// EnablePeripheralClocks pulses the clock gate of APB0 and the UART0 APB
// clock. clk_icg is cleared and set inside one modify, so the store that
// reaches the register carries the set bit.
func EnablePeripheralClocks(crg *SysCRG) {
	Modify(crg.ClkAPB0, func(w *W) { w.ClearBit(ClkICG).SetBit(ClkICG) })
	Modify(crg.ClkU0UARTAPB, func(w *W) { w.ClearBit(ClkICG).SetBit(ClkICG) })
}
