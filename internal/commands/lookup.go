package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/moneyreport/internal/config"
	"github.com/cleared-dev/moneyreport/internal/lookup"
)

func newLookupCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Inspect the category lookup file",
	}
	cmd.AddCommand(newLookupCheckCommand(g))
	return cmd
}

func newLookupCheckCommand(g *globalOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the category lookup and list duplicate descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(g.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lookup") {
				cfg.Lookup.Path = path
			}

			table, err := lookup.Load(cfg.Lookup.Path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range table.Duplicates() {
				fmt.Fprintf(out, "duplicate: %q %s -> %s\n", d.Description, d.Replaced, d.Category)
			}
			_, err = fmt.Fprintf(out, "%s: %d descriptions, %d duplicates\n", cfg.Lookup.Path, table.Len(), len(table.Duplicates()))
			return err
		},
	}

	cmd.Flags().StringVar(&path, "lookup", "", "category lookup file (default from config: category_lookup.csv)")

	return cmd
}
