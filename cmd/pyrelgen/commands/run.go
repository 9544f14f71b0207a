package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch the release listing and regenerate the release table",
		Long: "Fetch the python-build-standalone release listing, resolve checksums for new " +
			"artifacts and rewrite the generated release table and its cache.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context())
		},
	}
}
