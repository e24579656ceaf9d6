package core

// JH7110 peripheral memory map
// Offsets follow the JH7110 TRM register names (sys_syscfg_N, gpo_doen_N, ...).
const (
	PLICBase       = 0x0C000000
	UART0Base      = 0x10000000
	SysCRGBase     = 0x13020000
	SysSysconBase  = 0x13030000
	SysPinctrlBase = 0x13040000
	AonCRGBase     = 0x17000000
)

// Bus maps a physical address to the register at that address
type Bus func(addr uintptr) Register

// SysSyscon is the system configuration block (PLL control, GPIO voltage remap)
type SysSyscon struct {
	Syscfg3  Register // 0x0c
	Syscfg6  Register // 0x18
	Syscfg7  Register // 0x1c
	Syscfg8  Register // 0x20
	Syscfg9  Register // 0x24
	Syscfg11 Register // 0x2c
	Syscfg12 Register // 0x30
	Syscfg13 Register // 0x34
}

// sys_syscon fields
var (
	// sys_syscfg_3
	Syscfg3Vout0RemapGPIO0 = Bit(0)
	Syscfg3Vout0RemapGPIO1 = Bit(1)
	Syscfg3Vout0RemapGPIO2 = Bit(2)
	Syscfg3Vout0RemapGPIO3 = Bit(3)

	// sys_syscfg_6
	Syscfg6Pll0Dacpd = Bit(24)
	Syscfg6Pll0Dsmpd = Bit(25)

	// sys_syscfg_7
	Syscfg7Pll0Fbdiv = Field{Shift: 0, Width: 12}

	// sys_syscfg_8
	Syscfg8Pll0Frac     = Field{Shift: 0, Width: 24}
	Syscfg8Pll0Pd       = Bit(27)
	Syscfg8Pll0Postdiv1 = Field{Shift: 28, Width: 2}

	// sys_syscfg_9
	Syscfg9Pll0Prediv = Field{Shift: 0, Width: 6}

	// sys_syscfg_11
	Syscfg11Pll2Dacpd = Bit(15)
	Syscfg11Pll2Dsmpd = Bit(16)
	Syscfg11Pll2Fbdiv = Field{Shift: 17, Width: 12}

	// sys_syscfg_12
	Syscfg12Pll2Frac     = Field{Shift: 0, Width: 24}
	Syscfg12Pll2Pd       = Bit(27)
	Syscfg12Pll2Postdiv1 = Field{Shift: 28, Width: 2}

	// sys_syscfg_13
	Syscfg13Pll2Prediv = Field{Shift: 0, Width: 6}
)

// SysCRG is the system clock and reset generator
type SysCRG struct {
	ClkCPURoot        Register // 0x000
	ClkPeripheralRoot Register // 0x010
	ClkBusRoot        Register // 0x014
	ClkAPB0           Register // 0x030
	ClkU0UARTAPB      Register // 0x248
}

// AonCRG is the always-on clock and reset generator
type AonCRG struct {
	ClkAonAPB Register // 0x004
}

// CRG clock register fields, shared by every sys/aon clock register
var (
	ClkMuxSel = Field{Shift: 24, Width: 6}
	ClkICG    = Bit(31)
)

// Pad counts for the sys pin controller
const (
	NumGPIO   = 64
	numGpoReg = NumGPIO / 4
	numGpiReg = 22
)

// SysPinctrl is the sys-domain pin controller (GPIO mux and pad config)
type SysPinctrl struct {
	GpoDoen [numGpoReg]Register // 0x000: output enable, 4 pads per register
	GpoDout [numGpoReg]Register // 0x040: output signal select, 4 pads per register
	Gpi     [numGpiReg]Register // 0x080: input signal routing, 4 signals per register
	Ioirq0  Register            // 0x0dc
	Padcfg  [NumGPIO]Register   // 0x120: gpio_N pad electrical config
}

// sys_pinctrl fields
var (
	Ioirq0Gpen0 = Bit(0)

	PadIE   = Bit(0)
	PadDS   = Field{Shift: 1, Width: 2}
	PadPU   = Bit(3)
	PadPD   = Bit(4)
	PadSlew = Bit(5)
	PadSMT  = Bit(6)
	PadPOS  = Bit(7)
)

// DoenReg returns the gpo_doen register and doen_N field of a pad
func (p *SysPinctrl) DoenReg(pad Pad) (Register, Field) {
	return p.GpoDoen[pad/4], Field{Shift: uint8(pad%4) * 8, Width: 6}
}

// DoutReg returns the gpo_dout register and dout_N field of a pad
func (p *SysPinctrl) DoutReg(pad Pad) (Register, Field) {
	return p.GpoDout[pad/4], Field{Shift: uint8(pad%4) * 8, Width: 7}
}

// GpiReg returns the gpi register and field that routes an input signal
func (p *SysPinctrl) GpiReg(sig GpiSignal) (Register, Field) {
	return p.Gpi[sig/4], Field{Shift: uint8(sig%4) * 8, Width: 7}
}

// PLIC is the platform-level interrupt controller, hart context 0 only
type PLIC struct {
	Enable [5]Register // 0x2000: enable_0_N, one bit per source
}

// UARTRegs is a Synopsys DW APB UART with 4-byte register stride
type UARTRegs struct {
	Data Register // 0x00: RBR (read) / THR (write) / DLL (DLAB=1)
	IER  Register // 0x04: IER / DLH (DLAB=1)
	FCR  Register // 0x08: IIR (read) / FCR (write)
	LCR  Register // 0x0c
	MCR  Register // 0x10
	LSR  Register // 0x14
}

// UART register offsets
const (
	UARTData = 0x00
	UARTIER  = 0x04
	UARTFCR  = 0x08
	UARTLCR  = 0x0C
	UARTMCR  = 0x10
	UARTLSR  = 0x14
)

// DW UART fields
var (
	LCRDataLen = Field{Shift: 0, Width: 2}
	LCRStop    = Bit(2)
	LCRParity  = Bit(3)
	LCREven    = Bit(4)
	LCRDLAB    = Bit(7)

	IERRxData = Bit(0)

	FCRFifoEnable = Bit(0)
	FCRRxReset    = Bit(1)
	FCRTxReset    = Bit(2)

	LSRDataReady = Bit(0)
	LSRTxEmpty   = Bit(5)

	// DLL and DLH each hold one byte of the baud divisor
	DivLatch = Field{Shift: 0, Width: 8}
)

// Peripherals is the process-wide set of register blocks
type Peripherals struct {
	SysSyscon  *SysSyscon
	SysCRG     *SysCRG
	AonCRG     *AonCRG
	SysPinctrl *SysPinctrl
	PLIC       *PLIC
	UART0      *UARTRegs
}

// Bind lays out every JH7110 block used by the firmware over bus
func Bind(bus Bus) *Peripherals {
	sys := uintptr(SysSysconBase)
	crg := uintptr(SysCRGBase)
	uart := uintptr(UART0Base)

	p := &Peripherals{
		SysSyscon: &SysSyscon{
			Syscfg3:  bus(sys + 0x0C),
			Syscfg6:  bus(sys + 0x18),
			Syscfg7:  bus(sys + 0x1C),
			Syscfg8:  bus(sys + 0x20),
			Syscfg9:  bus(sys + 0x24),
			Syscfg11: bus(sys + 0x2C),
			Syscfg12: bus(sys + 0x30),
			Syscfg13: bus(sys + 0x34),
		},
		SysCRG: &SysCRG{
			ClkCPURoot:        bus(crg + 0x000),
			ClkPeripheralRoot: bus(crg + 0x010),
			ClkBusRoot:        bus(crg + 0x014),
			ClkAPB0:           bus(crg + 0x030),
			ClkU0UARTAPB:      bus(crg + 0x248),
		},
		AonCRG: &AonCRG{
			ClkAonAPB: bus(AonCRGBase + 0x004),
		},
		SysPinctrl: BindPinctrl(bus),
		PLIC:       &PLIC{},
		UART0: &UARTRegs{
			Data: bus(uart + UARTData),
			IER:  bus(uart + UARTIER),
			FCR:  bus(uart + UARTFCR),
			LCR:  bus(uart + UARTLCR),
			MCR:  bus(uart + UARTMCR),
			LSR:  bus(uart + UARTLSR),
		},
	}
	for i := range p.PLIC.Enable {
		p.PLIC.Enable[i] = bus(PLICBase + 0x2000 + uintptr(i)*4)
	}
	return p
}

// BindPinctrl lays out only the sys pin controller. The blinky entry point
// uses it without taking the other blocks.
func BindPinctrl(bus Bus) *SysPinctrl {
	base := uintptr(SysPinctrlBase)
	p := &SysPinctrl{Ioirq0: bus(base + 0x0DC)}
	for i := range p.GpoDoen {
		p.GpoDoen[i] = bus(base + 0x000 + uintptr(i)*4)
		p.GpoDout[i] = bus(base + 0x040 + uintptr(i)*4)
	}
	for i := range p.Gpi {
		p.Gpi[i] = bus(base + 0x080 + uintptr(i)*4)
	}
	for i := range p.Padcfg {
		p.Padcfg[i] = bus(base + 0x120 + uintptr(i)*4)
	}
	return p
}
