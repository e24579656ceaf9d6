package sim

import (
	"encoding/binary"
	"fmt"

	"github.com/sigurn/crc16"
	"gopkg.in/yaml.v2"

	"vf2shell/core"
)

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Entry is one register in a snapshot
type Entry struct {
	Name  string `yaml:"name,omitempty"`
	Addr  string `yaml:"addr"`
	Value string `yaml:"value"`

	addr  uintptr
	value uint32
}

// Snapshot is the state of every register the firmware has stored to
type Snapshot struct {
	Registers []Entry `yaml:"registers"`
	CRC16     string  `yaml:"crc16"`
}

// Snapshot captures the plain registers in address order. UART0 is left
// out: its data register is a stream, not state.
func (b *Bus) Snapshot() *Snapshot {
	s := &Snapshot{}
	addrs := b.Addresses()
	buf := make([]byte, 0, 12*len(addrs))
	for _, addr := range addrs {
		v := b.Value(addr)
		s.Registers = append(s.Registers, Entry{
			Name:  RegisterName(addr),
			Addr:  fmt.Sprintf("0x%08x", addr),
			Value: fmt.Sprintf("0x%08x", v),
			addr:  addr,
			value: v,
		})
		buf = binary.LittleEndian.AppendUint64(buf, uint64(addr))
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}
	s.CRC16 = fmt.Sprintf("0x%04x", crc16.Checksum(buf, crcTable))
	return s
}

// Checksum returns the CRC16/XMODEM of the snapshot's registers
func (s *Snapshot) Checksum() string {
	return s.CRC16
}

// Lookup returns the value of addr in the snapshot
func (s *Snapshot) Lookup(addr uintptr) (uint32, bool) {
	for _, e := range s.Registers {
		if e.addr == addr {
			return e.value, true
		}
	}
	return 0, false
}

// YAML renders the snapshot for diffing against a reference dump
func (s *Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return out, nil
}

// RegisterName returns the TRM name of a register the firmware uses, or ""
func RegisterName(addr uintptr) string {
	return registerNames[addr]
}

var registerNames = buildRegisterNames()

func buildRegisterNames() map[uintptr]string {
	names := map[uintptr]string{
		core.SysSysconBase + 0x0C: "sys_syscfg_3",
		core.SysSysconBase + 0x18: "sys_syscfg_6",
		core.SysSysconBase + 0x1C: "sys_syscfg_7",
		core.SysSysconBase + 0x20: "sys_syscfg_8",
		core.SysSysconBase + 0x24: "sys_syscfg_9",
		core.SysSysconBase + 0x2C: "sys_syscfg_11",
		core.SysSysconBase + 0x30: "sys_syscfg_12",
		core.SysSysconBase + 0x34: "sys_syscfg_13",

		core.SysCRGBase + 0x000: "clk_cpu_root",
		core.SysCRGBase + 0x010: "clk_peripheral_root",
		core.SysCRGBase + 0x014: "clk_bus_root",
		core.SysCRGBase + 0x030: "clk_apb0",
		core.SysCRGBase + 0x248: "clk_u0_uart_apb",
		core.AonCRGBase + 0x004: "clk_aon_apb",

		core.SysPinctrlBase + 0x0DC: "ioirq_0",
	}
	for i := uintptr(0); i < core.NumGPIO/4; i++ {
		names[core.SysPinctrlBase+0x000+i*4] = fmt.Sprintf("gpo_doen_%d", i)
		names[core.SysPinctrlBase+0x040+i*4] = fmt.Sprintf("gpo_dout_%d_%d", i*4, i*4+3)
	}
	for i := uintptr(0); i < 22; i++ {
		names[core.SysPinctrlBase+0x080+i*4] = fmt.Sprintf("gpi_%d", i)
	}
	for i := uintptr(0); i < core.NumGPIO; i++ {
		names[core.SysPinctrlBase+0x120+i*4] = fmt.Sprintf("gpio_%d", i)
	}
	for i := uintptr(0); i < 5; i++ {
		names[core.PLICBase+0x2000+i*4] = fmt.Sprintf("enable_0_%d", i)
	}
	return names
}
