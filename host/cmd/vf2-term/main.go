package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"

	"vf2shell/host/serial"
)

// Ctrl-] leaves the terminal, as in telnet
const escapeKey = 0x1D

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate")
	list    = flag.Bool("list", false, "List serial ports and exit")
	lockDir = flag.String("lockdir", "", "Directory for the port lock (default: temp dir)")
)

func main() {
	flag.Parse()

	if *list {
		if err := listPorts(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listPorts(w io.Writer) error {
	ports, err := serial.ListPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Fprintln(w, "No serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Fprintln(w, p)
	}
	return nil
}

func run() error {
	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.LockDir = *lockDir

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()
	_ = port.Flush()

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
	fmt.Fprintf(out, "Connected to %s at %d baud. Ctrl-] to quit.\r\n", cfg.Device, cfg.Baud)

	go func() {
		_ = copyBoard(out, port)
	}()

	return forwardKeys(port, ttyKeys{t: term})
}

// copyBoard copies board output to w until the port fails. Read timeouts
// surface as zero-length reads and are skipped.
func copyBoard(w io.Writer, port io.Reader) error {
	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
}

type keyReader interface {
	readKey() (rune, error)
}

// ttyKeys reads keystrokes from the local terminal
type ttyKeys struct {
	t *tty.TTY
}

func (k ttyKeys) readKey() (rune, error) {
	return k.t.ReadRune()
}

// forwardKeys sends keystrokes to the board until the escape key
func forwardKeys(w io.Writer, keys keyReader) error {
	var buf [utf8.UTFMax]byte
	for {
		r, err := keys.readKey()
		if err != nil {
			return fmt.Errorf("read terminal: %w", err)
		}
		if r == escapeKey {
			return nil
		}
		n := utf8.EncodeRune(buf[:], r)
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("write %s: %w", *device, err)
		}
	}
}
