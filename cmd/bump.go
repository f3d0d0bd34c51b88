package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/usecase"
)

// newBumpCmd creates the bump command
func newBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bump <major|minor|patch> <version>",
		Short: "Increment a version component",
		Long: `Increment a version component. Lower components reset to zero and any
prerelease or build suffix is cleared.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := usecase.ParseBumpLevel(args[0])
			if err != nil {
				return err
			}
			uc := &usecase.NextVersionUseCase{}
			next, err := uc.Execute(cmd.Context(), args[1], level)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}
