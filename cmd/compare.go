package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

// newCompareCmd creates the compare command
func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two versions by semantic-version precedence",
		Long: `Compare two versions by semantic-version precedence. Build metadata is
ignored, so versions differing only in build metadata compare equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := domain.NewVersion(args[0])
			if err != nil {
				return err
			}
			b, err := domain.NewVersion(args[1])
			if err != nil {
				return err
			}
			rel := "="
			switch a.Compare(b) {
			case -1:
				rel = "<"
			case 1:
				rel = ">"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", a, rel, b)
			return nil
		},
	}
}
