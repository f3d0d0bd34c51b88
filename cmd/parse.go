package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

// newParseCmd creates the parse command
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <version>",
		Short: "Validate a version string and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := domain.NewVersion(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:\t%s\n", v)
			fmt.Fprintf(out, "major:\t%d\n", v.Major())
			fmt.Fprintf(out, "minor:\t%d\n", v.Minor())
			fmt.Fprintf(out, "patch:\t%d\n", v.Patch())
			if v.IsPrerelease() {
				fmt.Fprintf(out, "prerelease:\t%s\n", v.Prerelease())
			}
			if v.Metadata() != "" {
				fmt.Fprintf(out, "build:\t%s\n", v.Metadata())
			}
			return nil
		},
	}
}
