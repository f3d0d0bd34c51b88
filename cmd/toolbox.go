package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsmithnh09/GitLAB/internal/domain"
	"github.com/jsmithnh09/GitLAB/internal/usecase"
)

// newToolboxCmd creates the toolbox command group
func newToolboxCmd(c *container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Read and write toolbox metadata files",
	}
	cmd.AddCommand(
		newToolboxInitCmd(c),
		newToolboxShowCmd(c),
		newToolboxSetVersionCmd(c),
		newToolboxBumpCmd(c),
		newToolboxRecentCmd(c),
	)
	return cmd
}

func newToolboxInitCmd(c *container) *cobra.Command {
	var (
		initDir    string
		initAuthor string
		initRepo   string
		initNotes  string
	)
	cmd := &cobra.Command{
		Use:   "init <name> <version>",
		Short: "Create a toolbox metadata file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := domain.NewVersion(args[1])
			if err != nil {
				return err
			}
			toolbox := &domain.Toolbox{
				Name:       args[0],
				Version:    v,
				Author:     initAuthor,
				Repository: initRepo,
				Summary:    initNotes,
				UpdatedAt:  time.Now().UTC(),
			}
			if err := c.metaRepo.Save(cmd.Context(), initDir, toolbox); err != nil {
				return err
			}
			recordVisit(c, cmd, initDir, toolbox.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "initialized toolbox %s %s\n", toolbox.Name, toolbox.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&initDir, "dir", ".", "Toolbox directory")
	cmd.Flags().StringVar(&initAuthor, "author", "", "Toolbox author")
	cmd.Flags().StringVar(&initRepo, "repo", "", "Source repository URL")
	cmd.Flags().StringVar(&initNotes, "summary", "", "One-line toolbox summary")
	return cmd
}

func newToolboxShowCmd(c *container) *cobra.Command {
	var showDir string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a toolbox metadata file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			toolbox, err := c.metaRepo.Load(cmd.Context(), showDir)
			if err != nil {
				return err
			}
			recordVisit(c, cmd, showDir, toolbox.Name)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:\t%s\n", toolbox.Name)
			fmt.Fprintf(out, "version:\t%s\n", toolbox.Version)
			if toolbox.Author != "" {
				fmt.Fprintf(out, "author:\t%s\n", toolbox.Author)
			}
			if toolbox.Repository != "" {
				fmt.Fprintf(out, "repository:\t%s\n", toolbox.Repository)
			}
			if toolbox.Summary != "" {
				fmt.Fprintf(out, "summary:\t%s\n", toolbox.Summary)
			}
			fmt.Fprintf(out, "updated:\t%s\n", toolbox.UpdatedAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&showDir, "dir", ".", "Toolbox directory")
	return cmd
}

func newToolboxSetVersionCmd(c *container) *cobra.Command {
	var setDir string
	cmd := &cobra.Command{
		Use:   "set-version <version>",
		Short: "Replace the version in a toolbox metadata file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := domain.NewVersion(args[0])
			if err != nil {
				return err
			}
			toolbox, err := c.metaRepo.Load(cmd.Context(), setDir)
			if err != nil {
				return err
			}
			updated := toolbox.WithVersion(v)
			if err := c.metaRepo.Save(cmd.Context(), setDir, updated); err != nil {
				return err
			}
			recordVisit(c, cmd, setDir, updated.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", updated.Name, toolbox.Version, updated.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&setDir, "dir", ".", "Toolbox directory")
	return cmd
}

func newToolboxBumpCmd(c *container) *cobra.Command {
	var bumpDir string
	cmd := &cobra.Command{
		Use:   "bump <major|minor|patch>",
		Short: "Bump the version in a toolbox metadata file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := usecase.ParseBumpLevel(args[0])
			if err != nil {
				return err
			}
			toolbox, err := c.metaRepo.Load(cmd.Context(), bumpDir)
			if err != nil {
				return err
			}
			uc := &usecase.NextVersionUseCase{}
			next, err := uc.Execute(cmd.Context(), toolbox.Version.String(), level)
			if err != nil {
				return err
			}
			updated := toolbox.WithVersion(next)
			if err := c.metaRepo.Save(cmd.Context(), bumpDir, updated); err != nil {
				return err
			}
			recordVisit(c, cmd, bumpDir, updated.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", updated.Name, toolbox.Version, updated.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&bumpDir, "dir", ".", "Toolbox directory")
	return cmd
}

func newToolboxRecentCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently visited toolbox directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.wsRepo.Recent(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.VisitedAt.Format(time.RFC3339), e.Toolbox, e.Path)
			}
			return nil
		},
	}
}

// recordVisit updates the navigation registry; failures are logged, not
// surfaced, since bookkeeping must never fail the primary operation.
func recordVisit(c *container, cmd *cobra.Command, dir, toolbox string) {
	if _, err := c.wsRepo.Visit(cmd.Context(), dir, toolbox); err != nil {
		c.log.Warn("failed to record toolbox visit", zap.String("dir", dir), zap.Error(err))
	}
}
