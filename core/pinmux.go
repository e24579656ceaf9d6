package core

// Pad is a sys-domain GPIO pad number
type Pad uint8

// Pads used by the firmware
const (
	PadUART0TX  Pad = 5
	PadUART0RX  Pad = 6
	PadJTAGTRST Pad = 36
	PadLED      Pad = 40
	PadJTAGTDO  Pad = 44
	PadJTAGTCK  Pad = 60
	PadJTAGTDI  Pad = 61
	PadJTAGTMS  Pad = 63
)

// DriveMode is the gpo_doen code for a pad
type DriveMode uint32

const (
	DriveOutput      DriveMode = 0b1    // GPIO output, used for the LED
	DrivePushPull    DriveMode = 0b01   // push-pull output
	DrivePullUpInput DriveMode = 0b10   // pull-up input
	DriveFloating    DriveMode = 0b1000 // floating output
)

// GpoFunction is the gpo_dout code selecting which signal drives a pad
type GpoFunction uint32

const (
	GpoLow        GpoFunction = 0
	GpoHigh       GpoFunction = 1
	GpoUART0Tx    GpoFunction = 20
	GpoJTAGTDO    GpoFunction = 21
	GpoLEDBlinky  GpoFunction = 0b01
	GpoLEDHandler GpoFunction = 0b10
)

// GpiSignal is an internal input signal that can be routed from a pad
type GpiSignal uint8

const (
	GpiJTAGTRSTN GpiSignal = 4
	GpiUART0RX   GpiSignal = 14
	GpiJTAGTDI   GpiSignal = 19
	GpiJTAGTMS   GpiSignal = 20
	GpiJTAGTCK   GpiSignal = 29
)

// gpiFromPad is the gpi routing code for a pad. Codes 0 and 1 are the
// constant low and high inputs.
func gpiFromPad(pad Pad) uint32 {
	return uint32(pad) + 2
}

// SetDrive writes the gpo_doen code of a pad
func SetDrive(pc *SysPinctrl, pad Pad, mode DriveMode) {
	reg, f := pc.DoenReg(pad)
	Modify(reg, func(w *W) { w.Set(f, uint32(mode)) })
}

// SetFunction writes the gpo_dout code of a pad
func SetFunction(pc *SysPinctrl, pad Pad, fn GpoFunction) {
	reg, f := pc.DoutReg(pad)
	Modify(reg, func(w *W) { w.Set(f, uint32(fn)) })
}

// RouteInput routes a pad into an internal input signal
func RouteInput(pc *SysPinctrl, sig GpiSignal, pad Pad) {
	reg, f := pc.GpiReg(sig)
	Modify(reg, func(w *W) { w.Set(f, gpiFromPad(pad)) })
}

// RemapGPIOVoltage clears the vout0 remap bits of all four GPIO banks,
// putting the pads in the 3.3V domain. It must run before any pad is
// configured.
func RemapGPIOVoltage(sys *SysSyscon) {
	Modify(sys.Syscfg3, func(w *W) {
		w.ClearBit(Syscfg3Vout0RemapGPIO0).
			ClearBit(Syscfg3Vout0RemapGPIO1).
			ClearBit(Syscfg3Vout0RemapGPIO2).
			ClearBit(Syscfg3Vout0RemapGPIO3)
	})
}

// ConfigureLEDPin sets up the LED pad as an interrupt-capable output.
// Pull-up and pull-down are both asserted; that matches the reference
// bring-up sequence and is kept as is.
func ConfigureLEDPin(pc *SysPinctrl) {
	Modify(pc.Ioirq0, func(w *W) { w.SetBit(Ioirq0Gpen0) })
	Modify(pc.Padcfg[PadLED], func(w *W) {
		w.ClearBit(PadIE).SetBit(PadPD).SetBit(PadPU)
	})
	SetDrive(pc, PadLED, DriveOutput)
}

// ConfigureUARTPins routes UART0 TXD to GPIO5 and RXD from GPIO6
func ConfigureUARTPins(pc *SysPinctrl) {
	SetDrive(pc, PadUART0TX, DrivePushPull)
	SetFunction(pc, PadUART0TX, GpoUART0Tx)

	SetDrive(pc, PadUART0RX, DrivePullUpInput)
	RouteInput(pc, GpiUART0RX, PadUART0RX)
}

// ConfigureJTAGPins routes the JTAG test port to its pads
func ConfigureJTAGPins(pc *SysPinctrl) {
	inputs := []struct {
		pad Pad
		sig GpiSignal
	}{
		{PadJTAGTRST, GpiJTAGTRSTN},
		{PadJTAGTDI, GpiJTAGTDI},
		{PadJTAGTMS, GpiJTAGTMS},
		{PadJTAGTCK, GpiJTAGTCK},
	}
	for _, in := range inputs {
		SetDrive(pc, in.pad, DrivePullUpInput)
		RouteInput(pc, in.sig, in.pad)
	}

	SetDrive(pc, PadJTAGTDO, DriveFloating)
	SetFunction(pc, PadJTAGTDO, GpoJTAGTDO)
}

// ConfigurePins applies the voltage remap and then every pad assignment.
// Each write is a read-modify-write of one field, so applying it again
// leaves the registers unchanged.
func ConfigurePins(p *Peripherals) {
	RemapGPIOVoltage(p.SysSyscon)
	ConfigureLEDPin(p.SysPinctrl)
	ConfigureUARTPins(p.SysPinctrl)
	ConfigureJTAGPins(p.SysPinctrl)
	DebugPrintln("[PIN] pinmux configured")
}
