package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/appraise/internal/stores"
	"github.com/colonyops/appraise/internal/tui"
	"github.com/colonyops/appraise/pkg/logutils"
)

type TuiCmd struct {
	flags *Flags
	store *stores.ReviewStore
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, store *stores.ReviewStore) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		store: store,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; appraise is an interactive application")
	}

	model := tui.NewModel(cmd.flags.Config, cmd.store)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	logger := logutils.Component(log.Logger, "tui")
	logger.Info().Int("reviews", cmd.store.Len()).Msg("tui exited")
	return nil
}
