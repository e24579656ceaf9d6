// Package shell is a small line-editing command shell that runs over a
// polled byte transport. It echoes and edits input, keeps a history and
// completes command names, and hands each finished line to an Environment.
package shell

import (
	"errors"
	"strings"
)

var (
	// ErrWouldBlock is returned by a Transport when no byte is available
	ErrWouldBlock = errors.New("would block")

	// ErrLineFull is returned when input arrives for a full line buffer
	ErrLineFull = errors.New("shell: line buffer full")
)

// Terminal sequences
const (
	Prompt      = "> "
	ClearScreen = "\x1b[H\x1b[2J"
	eraseLine   = "\x1b[K"
	newline     = "\r\n"
)

// Control bytes handled by the line editor
const (
	keyTab       = 0x09
	keyLF        = 0x0A
	keyCR        = 0x0D
	keyBackspace = 0x08
	keyBell      = 0x07
	keyEsc       = 0x1B
	keyDelete    = 0x7F
)

// Transport is the byte stream the shell runs over. ReadByte must not
// block: it returns ErrWouldBlock when nothing has arrived.
type Transport interface {
	ReadByte() (byte, error)
	WriteByte(c byte) error
}

// Environment receives parsed command lines and control bytes
type Environment interface {
	Command(sh *Shell, cmd, args string) error
	Control(sh *Shell, code byte) error
}

// InputKind says what Feed produced
type InputKind uint8

const (
	InputNone InputKind = iota
	InputControl
	InputCommand
)

// Input is the result of feeding one byte to the shell
type Input struct {
	Kind InputKind
	Code byte   // InputControl
	Cmd  string // InputCommand
	Args string // InputCommand
}

type escState uint8

const (
	escNone escState = iota
	escStart
	escCSI
)

// Shell is the line editor state. It is owned by the foreground loop.
type Shell struct {
	io       Transport
	complete *Autocomplete
	history  *History

	line    []byte
	size    int
	esc     escState
	lastCR  bool
	histPos int
}

// New creates a shell over t whose lines hold at most size bytes
func New(t Transport, size int, ac *Autocomplete, h *History) *Shell {
	if h == nil {
		h = NewHistory(0)
	}
	return &Shell{
		io:       t,
		complete: ac,
		history:  h,
		line:     make([]byte, 0, size),
		size:     size,
		histPos:  -1,
	}
}

// History returns the shell's command history
func (s *Shell) History() *History {
	return s.history
}

// Line returns the current unfinished input
func (s *Shell) Line() string {
	return string(s.line)
}

// Spin drains the transport, feeding every byte to the line editor and
// dispatching finished lines and control bytes to env. It returns nil once
// the transport has nothing more to give.
func (s *Shell) Spin(env Environment) error {
	for {
		c, err := s.io.ReadByte()
		if errors.Is(err, ErrWouldBlock) {
			return nil
		}
		if err != nil {
			return err
		}

		in, err := s.Feed(c)
		if err != nil {
			return err
		}

		switch in.Kind {
		case InputControl:
			if err := env.Control(s, in.Code); err != nil {
				return err
			}
		case InputCommand:
			if err := env.Command(s, in.Cmd, in.Args); err != nil {
				return err
			}
			if _, err := s.WriteString(Prompt); err != nil {
				return err
			}
		}
	}
}

// Feed runs one byte through the line editor
func (s *Shell) Feed(c byte) (Input, error) {
	if s.esc != escNone {
		return Input{}, s.feedEscape(c)
	}

	wasCR := s.lastCR
	s.lastCR = c == keyCR

	switch {
	case c == keyCR || c == keyLF:
		if c == keyLF && wasCR {
			return Input{}, nil
		}
		return s.finishLine()
	case c == keyBackspace || c == keyDelete:
		return Input{}, s.backspace()
	case c == keyTab:
		return Input{}, s.autocomplete()
	case c == keyEsc:
		s.esc = escStart
		return Input{}, nil
	case c < 0x20:
		return Input{Kind: InputControl, Code: c}, nil
	case c < keyDelete:
		return Input{}, s.insert(c)
	}
	return Input{}, nil
}

func (s *Shell) finishLine() (Input, error) {
	line := strings.TrimSpace(string(s.line))
	s.line = s.line[:0]
	s.histPos = -1

	if _, err := s.WriteString(newline); err != nil {
		return Input{}, err
	}
	if line == "" {
		_, err := s.WriteString(Prompt)
		return Input{}, err
	}

	s.history.Push(line)
	cmd, args := splitCommand(line)
	return Input{Kind: InputCommand, Cmd: cmd, Args: args}, nil
}

func splitCommand(line string) (string, string) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

func (s *Shell) insert(c byte) error {
	if len(s.line) >= s.size {
		_ = s.io.WriteByte(keyBell)
		return ErrLineFull
	}
	s.line = append(s.line, c)
	return s.io.WriteByte(c)
}

func (s *Shell) backspace() error {
	if len(s.line) == 0 {
		return s.io.WriteByte(keyBell)
	}
	s.line = s.line[:len(s.line)-1]
	_, err := s.WriteString("\b \b")
	return err
}

func (s *Shell) autocomplete() error {
	rest, ok := s.complete.Complete(string(s.line))
	if !ok || len(s.line)+len(rest) > s.size {
		return s.io.WriteByte(keyBell)
	}
	s.line = append(s.line, rest...)
	_, err := s.WriteString(rest)
	return err
}

func (s *Shell) feedEscape(c byte) error {
	switch s.esc {
	case escStart:
		if c == '[' {
			s.esc = escCSI
			return nil
		}
	case escCSI:
		s.esc = escNone
		switch c {
		case 'A':
			return s.recall(s.histPos + 1)
		case 'B':
			return s.recall(s.histPos - 1)
		}
		return nil
	}
	s.esc = escNone
	return nil
}

// recall replaces the input line with history entry pos, or with an empty
// line when pos is -1
func (s *Shell) recall(pos int) error {
	if pos < -1 {
		return nil
	}
	entry := ""
	if pos >= 0 {
		e, ok := s.history.At(pos)
		if !ok {
			return s.io.WriteByte(keyBell)
		}
		entry = e
	}
	s.histPos = pos
	s.line = append(s.line[:0], entry...)
	_, err := s.WriteString("\r" + Prompt + entry + eraseLine)
	return err
}

// Write sends p to the transport
func (s *Shell) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := s.io.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString sends str to the transport
func (s *Shell) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		if err := s.io.WriteByte(str[i]); err != nil {
			return i, err
		}
	}
	return len(str), nil
}

// Clear clears the terminal and homes the cursor
func (s *Shell) Clear() error {
	_, err := s.WriteString(ClearScreen)
	return err
}
