package cmd

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jsmithnh09/GitLAB/internal/config"
	"github.com/jsmithnh09/GitLAB/internal/repository"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	fsRepo   repository.FileSystemRepository
	metaRepo repository.MetadataRepository
	wsRepo   repository.WorkspaceRepository
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	metaRepo := repository.NewJSONMetadataRepository(fsRepo, cfg.MetadataFile, log)
	wsRepo := repository.NewJSONWorkspaceRepository(
		fsRepo,
		filepath.Join(cfg.WorkspaceDir, "history.json"),
		cfg.HistoryLimit,
		log,
	)

	return &container{
		cfg:      cfg,
		log:      log,
		fsRepo:   fsRepo,
		metaRepo: metaRepo,
		wsRepo:   wsRepo,
	}, nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newCompareCmd(),
		newBumpCmd(),
		newSortCmd(),
		newScanCmd(c),
		newSampleCmd(c),
		newLatestCmd(),
		newToolboxCmd(c),
		newVersionCmd(),
	)
	return nil
}
