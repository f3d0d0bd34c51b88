package repository

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

// The metadata repository locks through the OS, so these tests run on the
// real filesystem under t.TempDir.
func newTestMetadataRepo(t *testing.T) (MetadataRepository, string) {
	t.Helper()
	return NewJSONMetadataRepository(afero.NewOsFs(), "toolbox.json", zap.NewNop()), t.TempDir()
}

func testToolbox(t *testing.T, version string) *domain.Toolbox {
	t.Helper()
	v, err := domain.NewVersion(version)
	require.NoError(t, err)
	return &domain.Toolbox{
		Name:      "signal-kit",
		Version:   v,
		Author:    "jsmith",
		UpdatedAt: time.Now().UTC(),
	}
}

func TestJSONMetadataRepository_SaveAndLoad(t *testing.T) {
	t.Run("Should round-trip a toolbox record", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		ctx := context.Background()
		saved := testToolbox(t, "1.2.3-rc.1+5")
		require.NoError(t, repo.Save(ctx, dir, saved))
		loaded, err := repo.Load(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, saved.Name, loaded.Name)
		assert.True(t, saved.Version.Identical(loaded.Version))
		assert.Equal(t, saved.Author, loaded.Author)
	})
	t.Run("Should overwrite an existing record", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, dir, testToolbox(t, "1.0.0")))
		require.NoError(t, repo.Save(ctx, dir, testToolbox(t, "1.1.0")))
		loaded, err := repo.Load(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", loaded.Version.String())
	})
	t.Run("Should reject an invalid record on save", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		err := repo.Save(context.Background(), dir, &domain.Toolbox{Name: "no-version"})
		require.Error(t, err)
	})
	t.Run("Should fail to load when no metadata exists", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		_, err := repo.Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no toolbox metadata")
	})
}

func TestJSONMetadataRepository_Validation(t *testing.T) {
	t.Run("Should detect a tampered record via checksum", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, dir, testToolbox(t, "1.0.0")))
		// Flip a field without refreshing the checksum.
		fs := afero.NewOsFs()
		path := filepath.Join(dir, "toolbox.json")
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		var wrapper metadataWrapper
		require.NoError(t, json.Unmarshal(data, &wrapper))
		wrapper.Toolbox.Name = "tampered"
		tampered, err := json.Marshal(wrapper)
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, path, tampered, MetadataFilePermissions))
		_, err = repo.Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "checksum mismatch")
	})
	t.Run("Should reject an unknown schema version", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, dir, testToolbox(t, "1.0.0")))
		fs := afero.NewOsFs()
		path := filepath.Join(dir, "toolbox.json")
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		var wrapper metadataWrapper
		require.NoError(t, json.Unmarshal(data, &wrapper))
		wrapper.Metadata.SchemaVersion = "99.0.0"
		tampered, err := json.Marshal(wrapper)
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, path, tampered, MetadataFilePermissions))
		_, err = repo.Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incompatible schema version")
	})
	t.Run("Should reject corrupted JSON", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		fs := afero.NewOsFs()
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "toolbox.json"), []byte("{not json"), MetadataFilePermissions))
		_, err := repo.Load(context.Background(), dir)
		require.Error(t, err)
	})
}

func TestJSONMetadataRepository_Exists(t *testing.T) {
	t.Run("Should report presence of the metadata file", func(t *testing.T) {
		repo, dir := newTestMetadataRepo(t)
		ctx := context.Background()
		exists, err := repo.Exists(ctx, dir)
		require.NoError(t, err)
		assert.False(t, exists)
		require.NoError(t, repo.Save(ctx, dir, testToolbox(t, "1.0.0")))
		exists, err = repo.Exists(ctx, dir)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
