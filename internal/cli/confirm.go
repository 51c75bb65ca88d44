package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"golang.org/x/term"
)

// FormConfirmer asks for confirmation with a huh form when In is a terminal
// and falls back to a plain y/N prompt for pipes and redirects
type FormConfirmer struct {
	In  *os.File
	Out io.Writer
}

// Confirm implements simservice.Confirmer. Aborting the form (esc, ctrl+c)
// counts as a refusal.
func (f FormConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if !term.IsTerminal(int(f.In.Fd())) {
		return simservice.PromptConfirmer{In: f.In, Out: f.Out}.Confirm(ctx, prompt)
	}

	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithInput(f.In).WithOutput(f.Out).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run confirmation form: %w", err)
	}
	return ok, nil
}
