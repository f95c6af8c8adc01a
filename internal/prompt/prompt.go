// Package prompt decides whether an existing blank template may be overwritten.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Decision is the outcome for an existing target path.
type Decision int

const (
	Abort Decision = iota
	Proceed
)

func (d Decision) String() string {
	if d == Proceed {
		return "proceed"
	}
	return "abort"
}

// Choice is the user's answer to the abort/override question.
type Choice string

const (
	ChoiceNone     Choice = ""
	ChoiceAbort    Choice = "abort"
	ChoiceOverride Choice = "override"
)

// ParseChoice reads a typed answer. Anything unrecognised is ChoiceNone.
func ParseChoice(answer string) Choice {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "o", "override", "y", "yes":
		return ChoiceOverride
	case "a", "abort", "n", "no":
		return ChoiceAbort
	default:
		return ChoiceNone
	}
}

// Decide returns Proceed when the target is free or the user chose to override it.
// Every other answer, including none, aborts.
func Decide(targetExists bool, choice Choice) Decision {
	if !targetExists || choice == ChoiceOverride {
		return Proceed
	}
	return Abort
}

// Ask warns that path exists and reads one answer line from in.
func Ask(in io.Reader, out io.Writer, path string) (Choice, error) {
	warn := color.New(color.FgYellow, color.Bold)
	warn.Fprintf(out, "WARNING: a blank template already exists at %s.\n", path)
	color.New(color.FgCyan).Fprint(out, "[a]bort or [o]verride? ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return ChoiceNone, err
	}
	return ParseChoice(line), nil
}

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
