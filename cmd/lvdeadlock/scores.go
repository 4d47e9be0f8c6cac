package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdeadlock/scores"
)

// defaultScoresFile is used when --file is not given.
const defaultScoresFile = "lvdeadlock-scores.yaml"

func newScoresCmd(o *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the high score table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := scores.LoadFile(file)
			if err != nil {
				return err
			}
			o.printer(cmd).Scores(b.Entries())

			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", defaultScoresFile, "YAML high score file")

	return cmd
}
