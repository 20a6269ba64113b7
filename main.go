package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/appraise/internal/commands"
	"github.com/colonyops/appraise/internal/core/config"
	"github.com/colonyops/appraise/internal/core/styles"
	"github.com/colonyops/appraise/internal/stores"
	"github.com/colonyops/appraise/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		store     *stores.ReviewStore
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "appraise",
		Usage:     "Manage employee performance reviews from the terminal",
		UsageText: "appraise [global options] command [command options]",
		Description: `Appraise is an interactive review desk: a form for adding and editing
employee performance reviews next to a searchable, paginated table of
the collection. Ratings derive a performance tier automatically.

State lives in memory only; it is discarded on exit. Use --seed to
preload a collection from a YAML file.

Run 'appraise' with no arguments to open the interactive desk.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("APPRAISE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty discards logs; the TUI owns the terminal)",
				Sources:     cli.EnvVars("APPRAISE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("APPRAISE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "path to a YAML file of reviews to preload",
				Sources:     cli.EnvVars("APPRAISE_SEED"),
				Destination: &flags.SeedFile,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "override the configured TUI theme",
				Sources:     cli.EnvVars("APPRAISE_THEME"),
				Destination: &flags.Theme,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.Theme != "" {
				cfg.TUI.Theme = flags.Theme
			}
			if flags.SeedFile != "" {
				cfg.SeedFile = flags.SeedFile
			}
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("validate config: %w", err)
			}
			flags.Config = cfg

			// Validation ensures the theme name resolves.
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			store = stores.NewReviewStore(cfg.Review.AddLatency.Std())

			if cfg.SeedFile != "" {
				n, err := commands.LoadSeed(cfg.SeedFile, store)
				if err != nil {
					return ctx, fmt.Errorf("load seed file: %w", err)
				}
				log.Info().Int("reviews", n).Str("file", cfg.SeedFile).Msg("seeded collection")
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewThemesCmd(flags).Register(app)

	// The interactive desk is the default action when no subcommand is
	// given. The store is created in Before, so resolve it lazily.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'appraise --help' for usage", c.Args().First())
		}
		return commands.NewTuiCmd(flags, store).Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
