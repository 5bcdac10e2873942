package prompt

import (
	"errors"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when a prompt is needed but stdin is not a
// terminal, e.g. in scripts or CI.
var ErrNotTerminal = errors.New("interactive prompt requires a terminal; pass the options explicitly instead")

// Terminal runs the prompts of this package. It is the production
// implementation of the prompter interface used by the interactive flows.
type Terminal struct{}

func (Terminal) Select(prompt string, options []string) (SelectResult, error) {
	return Select(prompt, options)
}

func (Terminal) Confirm(prompt string) (ConfirmResult, error) {
	return Confirm(prompt)
}

func (Terminal) TextInput(prompt, placeholder string) (TextInputResult, error) {
	return TextInput(prompt, placeholder)
}

func requireTerminal() error {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return ErrNotTerminal
}

// newProgram renders to stderr so stdout stays clean for git output and
// confirmations.
func newProgram(model tea.Model) *tea.Program {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	return tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
}
