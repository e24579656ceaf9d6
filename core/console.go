package core

import "vf2shell/shell"

// Shell limits
const (
	CmdLen      = 16
	HistorySize = 4
)

// Commands offered by autocomplete
var Commands = []string{"clear", "help"}

// HelpText is the banner printed by help and by any unknown command
const HelpText = "\r\n" +
	"\x1b[31mL\x1b[32mE\x1b[34mD\x1b[33m Shell\x1b[0m\r\n\r\n" +
	"USAGE:\r\n" +
	"  command [arg]\r\n\r\n" +
	"COMMANDS:\r\n" +
	"  clear     Clear screen\r\n" +
	"  help      Print this message\r\n\n"

// Action is what the console does for a command
type Action uint8

const (
	ActionHelp Action = iota
	ActionClear
)

// Resolve maps a command name to its action. Unknown names print help.
func Resolve(cmd string) Action {
	switch cmd {
	case "clear":
		return ActionClear
	case "help":
		return ActionHelp
	default:
		return ActionHelp
	}
}

// Console is the LED shell environment and its foreground loop
type Console struct {
	Shell *shell.Shell
}

// NewConsole builds the shell over t with the fixed command set
func NewConsole(t shell.Transport) *Console {
	sh := shell.New(t, CmdLen, shell.NewAutocomplete(Commands...), shell.NewHistory(HistorySize))
	return &Console{Shell: sh}
}

// Command runs one parsed command line
func (c *Console) Command(sh *shell.Shell, cmd, args string) error {
	switch Resolve(cmd) {
	case ActionClear:
		return sh.Clear()
	default:
		_, err := sh.WriteString(HelpText)
		return err
	}
}

// Control ignores control bytes such as Ctrl-C
func (c *Console) Control(sh *shell.Shell, code byte) error {
	return nil
}

// Poll runs one pass of the shell loop
func (c *Console) Poll() error {
	return c.Shell.Spin(c)
}

// Run is the foreground loop. It never returns; a failed pass is dropped
// and the next pass starts immediately.
func (c *Console) Run() {
	for {
		_ = c.Poll()
	}
}
