package monitor

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/term/termios"
)

// Terminal puts an input file into cbreak mode for the monitor's
// command loop and restores the caller's original settings on Close.
// Scoped down from a full-screen terminal to just the line-at-a-time
// discipline the monitor's commands need.
type Terminal struct {
	input  *os.File
	output *os.File

	canonAttr  syscall.Termios
	cbreakAttr syscall.Termios
}

// NewTerminal captures input's current terminal attributes and derives
// a cbreak-mode variant from them.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	t := &Terminal{input: input, output: output}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canonAttr); err != nil {
		return nil, fmt.Errorf("monitor: reading terminal attributes: %w", err)
	}
	t.cbreakAttr = t.canonAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	return t, nil
}

// Enter switches the terminal into cbreak mode.
func (t *Terminal) Enter() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
}

// Leave restores the terminal to whatever mode it was in before Enter.
func (t *Terminal) Leave() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canonAttr)
}

// ReadCommand reads one line of monitor input, without the scrollback
// and tab-completion a full interactive session would add.
func (t *Terminal) ReadCommand() (string, error) {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := t.input.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case '\n', '\r':
			return line.String(), nil
		case 0x7f, '\b':
			s := line.String()
			if len(s) > 0 {
				line.Reset()
				line.WriteString(s[:len(s)-1])
			}
		default:
			line.WriteByte(buf[0])
		}
	}
}

// REPL drives the monitor's command loop against a Target until the
// "quit" command is read or input produces an error. Output and
// diagnostics go to the Terminal's output file.
func (m *Monitor) REPL(t *Terminal, target Target) error {
	if err := t.Enter(); err != nil {
		return err
	}
	defer t.Leave()

	for {
		fmt.Fprint(t.output, "monitor> ")
		line, err := t.ReadCommand()
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "q":
			return nil
		case "break", "b":
			addr, err := parseAddr(fields)
			if err != nil {
				fmt.Fprintln(t.output, err)
				continue
			}
			m.Break(addr)
		case "watch", "w":
			addr, err := parseAddr(fields)
			if err != nil {
				fmt.Fprintln(t.output, err)
				continue
			}
			m.Watch(addr, target)
		case "delete", "d":
			addr, err := parseAddr(fields)
			if err != nil {
				fmt.Fprintln(t.output, err)
				continue
			}
			m.ClearBreak(addr)
			m.ClearWatch(addr)
		case "list", "l":
			for _, a := range m.Breakpoints() {
				fmt.Fprintf(t.output, "breakpoint $%04X\n", a)
			}
			for _, a := range m.Watchpoints() {
				fmt.Fprintf(t.output, "watchpoint $%04X\n", a)
			}
		default:
			fmt.Fprintf(t.output, "unknown command %q\n", fields[0])
		}
	}
}

func parseAddr(fields []string) (uint16, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("expected an address")
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", fields[1], err)
	}
	return uint16(v), nil
}
