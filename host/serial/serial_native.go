//go:build !wasm

package serial

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/tarm/serial"
)

// ErrPortBusy is returned when another process holds the port lock
var ErrPortBusy = errors.New("serial port in use")

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	lock *flock.Flock
	cfg  *Config
}

// Open takes the port lock and opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	lock := flock.New(LockPath(cfg))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", cfg.Device, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", cfg.Device, ErrPortBusy)
	}

	port, err := serial.OpenPort(tarmConfig(cfg))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		lock: lock,
		cfg:  cfg,
	}, nil
}

func tarmConfig(cfg *Config) *serial.Config {
	c := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
		Size:        cfg.DataBits,
		Parity:      serial.Parity(cfg.Parity),
		StopBits:    serial.StopBits(cfg.StopBits),
	}
	if c.Parity == 0 {
		c.Parity = serial.ParityNone
	}
	if c.StopBits == 0 {
		c.StopBits = serial.Stop1
	}
	return c
}

// LockPath returns the lock file guarding cfg.Device
func LockPath(cfg *Config) string {
	dir := cfg.LockDir
	if dir == "" {
		dir = os.TempDir()
	}
	name := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(filepath.Base(cfg.Device))
	return filepath.Join(dir, "vf2-"+name+".lock")
}

// Read reads data from the serial port
func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes data to the serial port
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port and drops the lock
func (p *NativePort) Close() error {
	var err error
	if p.port != nil {
		err = p.port.Close()
	}
	if p.lock != nil {
		if uerr := p.lock.Unlock(); err == nil {
			err = uerr
		}
	}
	return err
}

// Flush discards unread input
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
