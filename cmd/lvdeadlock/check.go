package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdeadlock/simulator"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	var (
		flags gameFlags
		file  string
		level int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show a level's matrices and whether it is in a safe state",
		Long: `check loads a scenario file (--file) or a level (--level; canned or
generated) and prints Max, Allocation, Need, Available and the safety verdict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.newGame(o)
			if err != nil {
				return err
			}

			var snap simulator.Snapshot
			if file != "" {
				sc, err := simulator.LoadScenarioFile(file)
				if err != nil {
					return err
				}
				snap, err = g.Load(sc)
				if err != nil {
					return err
				}
			} else if snap, err = g.LoadLevel(level); err != nil {
				return err
			}
			o.printer(cmd).Snapshot(snap)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "YAML scenario file")
	cmd.Flags().IntVar(&level, "level", 1, "level number")
	cmd.MarkFlagsMutuallyExclusive("file", "level")

	return cmd
}
