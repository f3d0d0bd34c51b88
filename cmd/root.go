package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsmithnh09/GitLAB/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     "gitlab",
	Short:   "A CLI tool for managing toolbox versions",
	Version: version.Summary(),
	Long: `gitlab manages toolbox directories and the semantic versions inside them,
from parsing and comparing version strings to reading and writing toolbox
metadata files.`,
}

func Execute() error {
	return rootCmd.Execute()
}
