package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"vf2shell/shell"
)

// loopback is a shell transport over in-memory buffers
type loopback struct {
	in  []byte
	out bytes.Buffer
	err error
}

func (l *loopback) ReadByte() (byte, error) {
	if l.err != nil {
		err := l.err
		l.err = nil
		return 0, err
	}
	if len(l.in) == 0 {
		return 0, ErrWouldBlock
	}
	c := l.in[0]
	l.in = l.in[1:]
	return c, nil
}

func (l *loopback) WriteByte(c byte) error {
	return l.out.WriteByte(c)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		cmd  string
		want Action
	}{
		{"help", ActionHelp},
		{"clear", ActionClear},
		{"bogus", ActionHelp},
		{"", ActionHelp},
		{"HELP", ActionHelp},
	}
	for _, test := range tests {
		if got := Resolve(test.cmd); got != test.want {
			t.Errorf("Resolve(%q) = %d, want %d", test.cmd, got, test.want)
		}
	}
}

func TestConsoleDispatch(t *testing.T) {
	tests := []struct {
		input     string
		wantHelp  bool
		wantClear bool
	}{
		{"help\r", true, false},
		{"bogus\r", true, false},
		{"clear\r", false, true},
		{"help extra args\r", true, false},
	}

	for _, test := range tests {
		lb := &loopback{in: []byte(test.input)}
		c := NewConsole(lb)
		if err := c.Poll(); err != nil {
			t.Fatalf("Poll(%q) failed: %v", test.input, err)
		}
		out := lb.out.String()
		if got := strings.Contains(out, HelpText); got != test.wantHelp {
			t.Errorf("%q: help banner printed = %v, want %v", test.input, got, test.wantHelp)
		}
		if got := strings.Contains(out, shell.ClearScreen); got != test.wantClear {
			t.Errorf("%q: screen cleared = %v, want %v", test.input, got, test.wantClear)
		}
	}
}

func TestConsoleIgnoresControl(t *testing.T) {
	lb := &loopback{in: []byte{0x03}}
	c := NewConsole(lb)
	if err := c.Poll(); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if lb.out.Len() != 0 {
		t.Errorf("Ctrl-C produced output %q", lb.out.String())
	}
}

func TestConsoleSurvivesTransportError(t *testing.T) {
	lb := &loopback{in: []byte("help\r"), err: errors.New("overrun")}
	c := NewConsole(lb)

	if err := c.Poll(); err == nil {
		t.Fatal("expected the transport error from the first pass")
	}
	if err := c.Poll(); err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if !strings.Contains(lb.out.String(), HelpText) {
		t.Error("help not printed after the error was dropped")
	}
}

func TestConsoleHistoryDepth(t *testing.T) {
	lb := &loopback{in: []byte("help\rclear\ra\rb\rc\r")}
	c := NewConsole(lb)
	if err := c.Poll(); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	h := c.Shell.History()
	if h.Len() != HistorySize {
		t.Fatalf("history holds %d lines, want %d", h.Len(), HistorySize)
	}
	if oldest, _ := h.At(HistorySize - 1); oldest != "clear" {
		t.Errorf("oldest entry = %q, want clear", oldest)
	}
}
