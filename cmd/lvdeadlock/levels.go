package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdeadlock/simulator"
)

func newLevelsCmd(o *rootOptions) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the canned levels and their safe sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := simulator.DefaultCatalog()
			if catalogPath != "" {
				var err error
				if cat, err = simulator.LoadCatalogFile(catalogPath); err != nil {
					return err
				}
			}
			o.printer(cmd).Levels(cat)

			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML level catalog (default: built-in levels)")

	return cmd
}
