package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/repository"
	"github.com/jsmithnh09/GitLAB/internal/usecase"
)

// newLatestCmd creates the latest command
func newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest [path]",
		Short: "Print the highest version among a local repository's tags",
		Long: `Print the highest semantic version among the tags of a local git
repository. Only local refs are read; tags that are not semantic versions
are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			tags, err := repository.NewTagRepository(path)
			if err != nil {
				return err
			}
			uc := &usecase.LatestVersionUseCase{Tags: tags}
			v, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
