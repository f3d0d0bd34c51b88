package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/domain"
	"github.com/jsmithnh09/GitLAB/internal/usecase"
)

// newSampleCmd creates the sample command
func newSampleCmd(c *container) *cobra.Command {
	var (
		sampleCount int
		sampleSeed  int64
		sampleSort  bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate random valid versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := sampleSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			uc := usecase.NewSampleVersionsUseCase(seed)
			versions, err := uc.Execute(cmd.Context(), sampleCount)
			if err != nil {
				return err
			}
			if sampleSort {
				versions = domain.SortAscending(versions)
			}
			out := cmd.OutOrStdout()
			for _, v := range versions {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&sampleCount, "count", "n", c.cfg.SampleCount, "Number of versions to generate")
	cmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().BoolVar(&sampleSort, "sort", false, "Sort the generated versions ascending")
	return cmd
}
