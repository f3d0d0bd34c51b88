package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

const (
	// MetadataSchemaVersion defines the current schema version for toolbox metadata files
	MetadataSchemaVersion = "1.0.0"
	// MetadataFilePermissions defines the permissions for metadata files
	MetadataFilePermissions = 0o644
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 10 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

var errLockHeld = errors.New("metadata file lock is held")

// MetadataRepository manages the toolbox metadata file of a directory.
type MetadataRepository interface {
	Save(ctx context.Context, dir string, toolbox *domain.Toolbox) error
	Load(ctx context.Context, dir string) (*domain.Toolbox, error)
	Exists(ctx context.Context, dir string) (bool, error)
}

// MetadataFileInfo contains bookkeeping about the metadata file itself
type MetadataFileInfo struct {
	SchemaVersion string    `json:"schema_version"`
	Checksum      string    `json:"checksum"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// metadataWrapper wraps the toolbox record with file bookkeeping
type metadataWrapper struct {
	Metadata MetadataFileInfo `json:"metadata"`
	Toolbox  *domain.Toolbox  `json:"toolbox"`
}

// JSONMetadataRepository implements MetadataRepository using JSON file storage
type JSONMetadataRepository struct {
	fs       afero.Fs
	filename string
	log      *zap.Logger
}

// NewJSONMetadataRepository creates a new JSON-based metadata repository.
// filename is the bare metadata filename resolved inside each toolbox
// directory.
func NewJSONMetadataRepository(fs afero.Fs, filename string, log *zap.Logger) MetadataRepository {
	if filename == "" {
		filename = "toolbox.json"
	}
	return &JSONMetadataRepository{
		fs:       fs,
		filename: filename,
		log:      log,
	}
}

// Save persists the toolbox record to the directory's metadata file with
// proper locking and an atomic temp-file rename.
func (r *JSONMetadataRepository) Save(ctx context.Context, dir string, toolbox *domain.Toolbox) error {
	if err := toolbox.Validate(); err != nil {
		return fmt.Errorf("invalid toolbox record: %w", err)
	}
	filename := r.metadataPath(dir)
	lock := flock.New(r.lockPath(dir))
	if err := r.acquireLock(ctx, lock, false); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer r.unlock(lock)
	// Checksum covers the toolbox record only, not the wrapper
	recordData, err := json.Marshal(toolbox)
	if err != nil {
		return fmt.Errorf("failed to marshal toolbox for checksum: %w", err)
	}
	wrapper := metadataWrapper{
		Metadata: MetadataFileInfo{
			SchemaVersion: MetadataSchemaVersion,
			Checksum:      r.calculateChecksum(recordData),
			UpdatedAt:     time.Now().UTC(),
		},
		Toolbox: toolbox,
	}
	data, err := json.MarshalIndent(wrapper, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata wrapper: %w", err)
	}
	// Write atomically using temp file
	tempFile := filename + ".tmp"
	if err := afero.WriteFile(r.fs, tempFile, data, MetadataFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp metadata file: %w", err)
	}
	if err := r.fs.Rename(tempFile, filename); err != nil {
		if removeErr := r.fs.Remove(tempFile); removeErr != nil {
			r.log.Warn("failed to remove temp metadata file", zap.Error(removeErr))
		}
		return fmt.Errorf("failed to rename metadata file: %w", err)
	}
	return nil
}

// Load reads and validates the directory's toolbox metadata file.
func (r *JSONMetadataRepository) Load(ctx context.Context, dir string) (*domain.Toolbox, error) {
	filename := r.metadataPath(dir)
	lock := flock.New(r.lockPath(dir))
	if err := r.acquireLock(ctx, lock, true); err != nil {
		return nil, fmt.Errorf("failed to acquire shared lock: %w", err)
	}
	defer r.unlock(lock)
	data, err := afero.ReadFile(r.fs, filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no toolbox metadata found in %s", dir)
		}
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	var wrapper metadataWrapper
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata wrapper: %w", err)
	}
	if wrapper.Metadata.SchemaVersion != MetadataSchemaVersion {
		return nil, fmt.Errorf("incompatible schema version: expected %s, got %s",
			MetadataSchemaVersion, wrapper.Metadata.SchemaVersion)
	}
	recordData, err := json.Marshal(wrapper.Toolbox)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal toolbox for checksum validation: %w", err)
	}
	if wrapper.Metadata.Checksum != r.calculateChecksum(recordData) {
		return nil, fmt.Errorf("metadata checksum mismatch: file may be corrupted")
	}
	if err := wrapper.Toolbox.Validate(); err != nil {
		return nil, fmt.Errorf("invalid toolbox record in %s: %w", dir, err)
	}
	return wrapper.Toolbox, nil
}

// Exists checks whether the directory carries a metadata file.
func (r *JSONMetadataRepository) Exists(_ context.Context, dir string) (bool, error) {
	_, err := r.fs.Stat(r.metadataPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check metadata file: %w", err)
	}
	return true, nil
}

// acquireLock takes the file lock, retrying with constant backoff until the
// lock is free or the timeout elapses.
func (r *JSONMetadataRepository) acquireLock(ctx context.Context, lock *flock.Flock, shared bool) error {
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	return retry.Do(lockCtx, retry.NewConstant(LockRetryInterval), func(_ context.Context) error {
		try := lock.TryLock
		if shared {
			try = lock.TryRLock
		}
		locked, err := try()
		if err != nil {
			return err
		}
		if !locked {
			return retry.RetryableError(errLockHeld)
		}
		return nil
	})
}

func (r *JSONMetadataRepository) unlock(lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		r.log.Warn("failed to unlock metadata file", zap.Error(err))
	}
}

// calculateChecksum calculates SHA-256 checksum of data
func (r *JSONMetadataRepository) calculateChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *JSONMetadataRepository) metadataPath(dir string) string {
	return filepath.Join(dir, r.filename)
}

func (r *JSONMetadataRepository) lockPath(dir string) string {
	return filepath.Join(dir, "."+r.filename+".lock")
}
