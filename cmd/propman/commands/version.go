package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/propman/cmd"
)

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, commit, and build date of propman.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), cmd.Info())
			return err
		},
	}
}
