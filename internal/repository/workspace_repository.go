package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

const (
	// RegistryFilePermissions defines the permissions for the navigation registry file
	RegistryFilePermissions = 0o644
	// RegistryDirPermissions defines the permissions for the workspace directory
	RegistryDirPermissions = 0o755
)

// WorkspaceRepository tracks toolbox directories the user has navigated to.
type WorkspaceRepository interface {
	Visit(ctx context.Context, path, toolbox string) (*domain.WorkspaceEntry, error)
	Recent(ctx context.Context) ([]*domain.WorkspaceEntry, error)
	Forget(ctx context.Context, path string) error
}

// JSONWorkspaceRepository implements WorkspaceRepository using a JSON
// registry file, most recent entry first.
type JSONWorkspaceRepository struct {
	fs    afero.Fs
	file  string
	limit int
	mu    sync.Mutex
	log   *zap.Logger
}

// NewJSONWorkspaceRepository creates a new JSON-based workspace repository.
// file is the registry file path; limit bounds how many entries are kept.
func NewJSONWorkspaceRepository(fs afero.Fs, file string, limit int, log *zap.Logger) WorkspaceRepository {
	if limit <= 0 {
		limit = 10
	}
	return &JSONWorkspaceRepository{
		fs:    fs,
		file:  file,
		limit: limit,
		log:   log,
	}
}

// Visit records a navigation to path, moving it to the front of the registry.
// Revisiting a known path keeps its entry ID and refreshes the timestamp.
func (r *JSONWorkspaceRepository) Visit(_ context.Context, path, toolbox string) (*domain.WorkspaceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, err := r.load()
	if err != nil {
		return nil, err
	}
	entry := &domain.WorkspaceEntry{
		ID:        uuid.New().String(),
		Path:      path,
		Toolbox:   toolbox,
		VisitedAt: time.Now().UTC(),
	}
	remaining := make([]*domain.WorkspaceEntry, 0, len(entries))
	for _, e := range entries {
		if e.Path == path {
			entry.ID = e.ID
			if toolbox == "" {
				entry.Toolbox = e.Toolbox
			}
			continue
		}
		remaining = append(remaining, e)
	}
	entries = append([]*domain.WorkspaceEntry{entry}, remaining...)
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}
	if err := r.save(entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// Recent returns the registry entries, most recently visited first.
func (r *JSONWorkspaceRepository) Recent(_ context.Context) ([]*domain.WorkspaceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Forget removes the entry for path, if any.
func (r *JSONWorkspaceRepository) Forget(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, err := r.load()
	if err != nil {
		return err
	}
	remaining := make([]*domain.WorkspaceEntry, 0, len(entries))
	for _, e := range entries {
		if e.Path != path {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(entries) {
		return nil
	}
	return r.save(remaining)
}

func (r *JSONWorkspaceRepository) load() ([]*domain.WorkspaceEntry, error) {
	data, err := afero.ReadFile(r.fs, r.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read navigation registry: %w", err)
	}
	var entries []*domain.WorkspaceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal navigation registry: %w", err)
	}
	return entries, nil
}

func (r *JSONWorkspaceRepository) save(entries []*domain.WorkspaceEntry) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.file), RegistryDirPermissions); err != nil {
		return fmt.Errorf("failed to ensure workspace directory: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal navigation registry: %w", err)
	}
	// Write atomically using temp file
	tempFile := r.file + ".tmp"
	if err := afero.WriteFile(r.fs, tempFile, data, RegistryFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp registry file: %w", err)
	}
	if err := r.fs.Rename(tempFile, r.file); err != nil {
		if removeErr := r.fs.Remove(tempFile); removeErr != nil {
			r.log.Warn("failed to remove temp registry file", zap.Error(removeErr))
		}
		return fmt.Errorf("failed to rename registry file: %w", err)
	}
	return nil
}
