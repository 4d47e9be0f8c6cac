package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdeadlock/internal/logging"
	"github.com/katalvlaran/lvdeadlock/internal/render"
	"github.com/katalvlaran/lvdeadlock/simulator"
)

// rootOptions holds the persistent flags and the state they produce.
type rootOptions struct {
	logLevel  string
	logFormat string
	color     bool

	logger *slog.Logger
	now    func() time.Time
}

// newRootCmd builds the command tree. Each call returns an independent
// tree, so tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "lvdeadlock",
		Short: "Train deadlock avoidance and detection from the terminal",
		Long: `lvdeadlock plays the Banker's Algorithm levels of the deadlock trainer
and analyses resource-allocation graphs for deadlock cycles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.FromFlags(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().BoolVar(&opts.color, "color", false, "colourise tables")

	cmd.AddCommand(newLevelsCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newPlayCmd(opts))
	cmd.AddCommand(newGraphCmd(opts))
	cmd.AddCommand(newScoresCmd(opts))

	return cmd
}

// printer returns a table printer on the command's output.
func (o *rootOptions) printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), o.color)
}

// gameFlags are shared by check and play.
type gameFlags struct {
	catalog  string
	settings string
	seed     int64
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "YAML level catalog (default: built-in levels)")
	cmd.Flags().StringVar(&f.settings, "settings", "", "YAML settings overriding the defaults")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed for generated levels")
}

// newGame builds a Game from the flags.
func (f *gameFlags) newGame(o *rootOptions) (*simulator.Game, error) {
	gameOpts := []simulator.Option{
		simulator.WithSeed(f.seed),
		simulator.WithLogger(o.logger),
	}
	if f.catalog != "" {
		cat, err := simulator.LoadCatalogFile(f.catalog)
		if err != nil {
			return nil, err
		}
		gameOpts = append(gameOpts, simulator.WithCatalog(cat))
	}
	if f.settings != "" {
		s, err := simulator.LoadSettingsFile(f.settings)
		if err != nil {
			return nil, err
		}
		gameOpts = append(gameOpts, simulator.WithSettings(s))
	}

	return simulator.New(gameOpts...), nil
}
