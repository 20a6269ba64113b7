package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/appraise/internal/core/styles"
)

type ThemesCmd struct {
	flags *Flags
}

// NewThemesCmd creates a new themes command
func NewThemesCmd(flags *Flags) *ThemesCmd {
	return &ThemesCmd{flags: flags}
}

// Register adds the themes command to the application.
func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "themes",
		Usage: "List available TUI themes",
		Action: func(ctx context.Context, c *cli.Command) error {
			active := styles.DefaultTheme
			if cmd.flags.Config != nil && cmd.flags.Config.TUI.Theme != "" {
				active = cmd.flags.Config.TUI.Theme
			}

			for _, name := range styles.ThemeNames() {
				marker := " "
				if name == active {
					marker = "*"
				}
				fmt.Fprintf(c.Writer, "%s %s\n", marker, name)
			}
			return nil
		},
	})
	return app
}
