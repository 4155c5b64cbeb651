package cli

import (
	"github.com/spf13/cobra"

	"github.com/gleemora/survivors/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("survivors %s\n", ver)
			cmd.Printf("commit:  %s\n", version.GetGitCommit())
			cmd.Printf("built:   %s\n", version.GetBuildDate())
			return nil
		},
	}
}
