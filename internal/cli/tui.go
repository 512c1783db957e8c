package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tokenconv/tokenconv/internal/tui"
)

// ErrNotATerminal is returned when the TUI is launched without a tty.
var ErrNotATerminal = errors.New("the interactive view requires a terminal")

// newTUICmd creates the "tui" command that launches the interactive
// conversion view.
func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive conversion view",
		Long:  "Open the interactive converter: pick two tokens, type an amount on either side, swap with 's'",
		Example: `  # Open the converter
  tokenconv tui`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd)
		},
	}

	return cmd
}

func runTUI(cmd *cobra.Command) error {
	if !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}

	svc, _, err := buildService(cmd)
	if err != nil {
		return err
	}

	model := tui.NewConvertModel(cmd.Context(), svc.AllTokens)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running conversion view: %w", err)
	}

	return nil
}
