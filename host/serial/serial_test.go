//go:build !wasm

package serial

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/tarm/serial"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	if cfg.Baud != 115200 {
		t.Errorf("Baud = %d, want 115200", cfg.Baud)
	}
	if cfg.DataBits != 8 || cfg.Parity != ParityNone || cfg.StopBits != 1 {
		t.Errorf("frame = %d%c%d, want 8N1", cfg.DataBits, cfg.Parity, cfg.StopBits)
	}
}

func TestTarmConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		parity serial.Parity
		stop   serial.StopBits
	}{
		{"8N1", *DefaultConfig("COM3"), serial.ParityNone, serial.Stop1},
		{"zero value", Config{Device: "COM3", Baud: 9600}, serial.ParityNone, serial.Stop1},
		{"7E2", Config{Device: "COM3", Baud: 9600, DataBits: 7, Parity: ParityEven, StopBits: 2}, serial.ParityEven, serial.Stop2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tarmConfig(&tt.cfg)
			if c.Name != tt.cfg.Device || c.Baud != tt.cfg.Baud {
				t.Errorf("port = %s@%d, want %s@%d", c.Name, c.Baud, tt.cfg.Device, tt.cfg.Baud)
			}
			if c.Parity != tt.parity {
				t.Errorf("Parity = %c, want %c", c.Parity, tt.parity)
			}
			if c.StopBits != tt.stop {
				t.Errorf("StopBits = %d, want %d", c.StopBits, tt.stop)
			}
		})
	}
}

func TestLockPath(t *testing.T) {
	dir := t.TempDir()
	got := LockPath(&Config{Device: "/dev/ttyUSB0", LockDir: dir})
	if want := filepath.Join(dir, "vf2-ttyUSB0.lock"); got != want {
		t.Errorf("LockPath = %q, want %q", got, want)
	}
}

func TestOpenBusy(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyVF2-test")
	cfg.LockDir = t.TempDir()

	held := flock.New(LockPath(cfg))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock = %v, %v", ok, err)
	}
	defer held.Unlock()

	if _, err := Open(cfg); !errors.Is(err, ErrPortBusy) {
		t.Errorf("Open = %v, want ErrPortBusy", err)
	}
}

func TestOpenNil(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("Open(nil) succeeded")
	}
}
