// Package prompt provides the yes/no confirmation capability used before
// writing into a pre-existing directory.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Confirmer answers a yes/no question. The generation engine treats it as an
// injected capability so non-interactive callers and tests can substitute a
// fixed answer.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Terminal is the interactive Confirmer. On a non-TTY it answers "no",
// which aborts generation cleanly.
type Terminal struct{}

// Confirm presents an interactive yes/no form.
func (Terminal) Confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))

	if err := form.Run(); err != nil {
		// Ctrl-C is equivalent to answering "no".
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return ok, nil
}

// Auto is a Confirmer with a fixed answer. Auto(true) backs --force and
// scripted use; Auto(false) is the declining test double.
type Auto bool

// Confirm returns the fixed answer.
func (a Auto) Confirm(string) (bool, error) {
	return bool(a), nil
}
