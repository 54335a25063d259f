package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/roster/pkg/version"
)

const versionCmdName = "version"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			line := info.String()
			switch sv, err := version.Semver(); {
			case err != nil:
				line += " (unversioned build)"
			case sv.Prerelease() != "":
				line += " (pre-release)"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}
