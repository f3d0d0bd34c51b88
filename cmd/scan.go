package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/internal/usecase"
)

// newScanCmd creates the scan command
func newScanCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Print the first semantic version found in a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := &usecase.ScanVersionUseCase{FS: c.fsRepo}
			if len(args) == 0 {
				v, err := uc.FindFirst(cmd.InOrStdin())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			v, err := uc.ExecuteFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
