package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"

	"vf2shell/core"
	"vf2shell/shell"
	"vf2shell/sim"
)

const escapeKey = 0x1D

var (
	debug  = flag.Bool("debug", false, "Log bring-up steps to stderr")
	dump   = flag.String("dump", "", "Write the post-boot register snapshot (YAML) to this file and exit")
	blinky = flag.Int("blinky", 0, "Run the standalone blinky for N cycles instead of the shell")
	poll   = flag.Duration("poll", time.Millisecond, "Interval between shell polls")
	script = flag.String("send", "", "Type these shell-quoted lines into the board, print its output and exit")
)

func main() {
	flag.Parse()

	if *debug {
		logger := log.New(os.Stderr, "", log.Lmicroseconds)
		core.SetDebugWriter(func(s string) { logger.Println(s) })
		core.SetDebugEnabled(true)
	}

	var err error
	switch {
	case *blinky > 0:
		err = runBlinky(os.Stdout, *blinky)
	case *dump != "":
		err = dumpBoot(*dump)
	case *script != "":
		err = runScript(colorable.NewColorableStdout(), *script)
	default:
		err = runShell()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dumpBoot boots on a fresh bus and writes the register state
func dumpBoot(path string) error {
	bus := sim.NewBus(io.Discard)
	core.Boot(core.Bind(bus.Register), core.BusySpin{})

	snap := bus.Snapshot()
	out, err := snap.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("%d registers, crc16 %s\n", len(snap.Registers), snap.Checksum())
	return nil
}

// runScript boots the shell and types each line of script into it. Lines
// are split like shell words, so "help clear" sends two lines and a quoted
// "help me" sends one.
func runScript(w io.Writer, script string) error {
	lines, err := shell.Fields(script)
	if err != nil {
		return fmt.Errorf("parse -send: %w", err)
	}

	bus := sim.NewBus(w)
	sys := core.Boot(core.Bind(bus.Register), core.BusySpin{})
	for _, line := range lines {
		bus.Receive([]byte(line + "\r"))
		if err := sys.Console.Poll(); err != nil {
			return err
		}
	}
	return nil
}

// runBlinky prints each LED level the standalone blinky selects
func runBlinky(w io.Writer, cycles int) error {
	bus := sim.NewBus(nil)
	b := core.Blinky{Pinctrl: core.BindPinctrl(bus.Register), Delay: core.BusySpin{}}
	b.Configure()

	reg, f := b.Pinctrl.DoutReg(core.PadLED)
	for i := 0; i < cycles; i++ {
		b.Step()
		fmt.Fprintf(w, "cycle %d: led dout=%#x\n", i, core.Read(reg, f))
	}
	return nil
}

func runShell() error {
	term, err := tty.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer term.Close()

	restore, err := term.Raw()
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer restore()

	out := colorable.NewColorableStdout()
	bus := sim.NewBus(out)
	sys := core.Boot(core.Bind(bus.Register), core.BusySpin{})

	var pulses uint32
	bus.OnUART0Interrupt(func() {
		sys.Blink.Handle()
		atomic.AddUint32(&pulses, 1)
	})

	go func() {
		for {
			_ = sys.Console.Poll()
			time.Sleep(*poll)
		}
	}()

	for {
		r, err := term.ReadRune()
		if err != nil {
			return fmt.Errorf("read terminal: %w", err)
		}
		if r == escapeKey {
			fmt.Fprintf(out, "\r\n%d pulse trains\r\n", atomic.LoadUint32(&pulses))
			return nil
		}
		if r < 0x80 {
			bus.Receive([]byte{byte(r)})
		}
	}
}
