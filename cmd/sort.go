package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

// newSortCmd creates the sort command
func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <version>...",
		Short: "Sort versions in ascending precedence order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := make([]*domain.Version, 0, len(args))
			for _, arg := range args {
				v, err := domain.NewVersion(arg)
				if err != nil {
					return err
				}
				versions = append(versions, v)
			}
			out := cmd.OutOrStdout()
			for _, v := range domain.SortAscending(versions) {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}
