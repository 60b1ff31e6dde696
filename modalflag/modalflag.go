// Package modalflag is a thin wrapper around the standard library's flag
// package that adds the concept of mutually exclusive "sub-modes"
// (e.g. "run", "disk", "snapshot") each with their own flag set, and a
// uniform -help presentation across both flags and sub-modes.
package modalflag

import (
	"flag"
	"fmt"
	"io"
)

// ParseResult indicates what the caller should do after calling Parse.
type ParseResult int

// List of possible results from Parse.
const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

// Modes wraps a flag.FlagSet with sub-mode support.
type Modes struct {
	Output io.Writer

	fs   *flag.FlagSet
	args []string

	modes      []string
	defaultMd  string
	mode       string
	path       []string

	remaining []string
}

// NewArgs resets Modes with a fresh argument list (as would be found in
// os.Args[1:]).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.fs = flag.NewFlagSet("", flag.ContinueOnError)
	md.fs.SetOutput(io.Discard)
}

func (md *Modes) ensure() {
	if md.fs == nil {
		md.NewArgs(nil)
	}
}

// AddBool adds a boolean flag to the current mode's flag set.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	md.ensure()
	return md.fs.Bool(name, value, usage)
}

// AddString adds a string flag to the current mode's flag set.
func (md *Modes) AddString(name string, value string, usage string) *string {
	md.ensure()
	return md.fs.String(name, value, usage)
}

// AddInt adds an integer flag to the current mode's flag set.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	md.ensure()
	return md.fs.Int(name, value, usage)
}

// AddSubModes declares the list of valid sub-modes for this level. The
// first entry is the default, selected when the user supplies no mode
// argument.
func (md *Modes) AddSubModes(modes ...string) {
	md.modes = modes
	if len(modes) > 0 {
		md.defaultMd = modes[0]
	}
}

// Mode returns the sub-mode selected by the most recent call to Parse, or
// the empty string if no sub-mode was matched (either because there are no
// declared sub-modes, or parsing stopped before a mode could be read).
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the sequence of sub-modes selected so far, joined by "/".
func (md *Modes) Path() string {
	s := ""
	for i, p := range md.path {
		if i > 0 {
			s += "/"
		}
		s += p
	}
	return s
}

// RemainingArgs returns the arguments left over after flag and mode
// parsing.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

func (md *Modes) printHelp() {
	any := false
	md.fs.VisitAll(func(f *flag.Flag) {
		if f.Name == "help" {
			return
		}
		any = true
	})

	if !any && len(md.modes) == 0 {
		fmt.Fprintln(md.Output, "No help available")
		return
	}

	fmt.Fprintln(md.Output, "Usage:")

	md.fs.VisitAll(func(f *flag.Flag) {
		if f.Name == "help" {
			return
		}
		fmt.Fprintf(md.Output, "  -%s\n", f.Name)
		fmt.Fprintf(md.Output, "    \t%s", f.Usage)
		if f.DefValue != "" {
			fmt.Fprintf(md.Output, " (default %s)", f.DefValue)
		}
		fmt.Fprintln(md.Output)
	})

	if len(md.modes) > 0 {
		if any {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes:")
		for i, m := range md.modes {
			if i > 0 {
				fmt.Fprint(md.Output, ",")
			}
			fmt.Fprintf(md.Output, " %s", m)
		}
		fmt.Fprintln(md.Output)
		fmt.Fprintf(md.Output, "    default: %s\n", md.defaultMd)
	}
}

// Parse parses the argument list set by NewArgs against the flags and
// sub-modes declared so far.
func (md *Modes) Parse() (ParseResult, error) {
	md.ensure()

	help := false
	md.fs.BoolVar(&help, "help", false, "show this help message")

	if err := md.fs.Parse(md.args); err != nil {
		return ParseError, err
	}

	if help {
		md.printHelp()
		return ParseHelp, nil
	}

	remaining := md.fs.Args()

	if len(md.modes) > 0 {
		md.mode = md.defaultMd
		if len(remaining) > 0 {
			for _, m := range md.modes {
				if m == remaining[0] {
					md.mode = remaining[0]
					remaining = remaining[1:]
					break
				}
			}
		}
		md.path = append(md.path, md.mode)
	}

	md.remaining = remaining

	return ParseContinue, nil
}
