package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the registered version sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			return c.app.Sources(output)
		},
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: json, yaml, or table")
	return cmd
}
