package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Run("Should provide working defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, ".gitlab", cfg.WorkspaceDir)
		assert.Equal(t, "toolbox.json", cfg.MetadataFile)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return DefaultConfig() }
	t.Run("Should reject an empty workspace dir", func(t *testing.T) {
		cfg := valid()
		cfg.WorkspaceDir = ""
		assert.Error(t, cfg.Validate())
	})
	t.Run("Should reject path traversal in workspace dir", func(t *testing.T) {
		cfg := valid()
		cfg.WorkspaceDir = "../elsewhere"
		assert.Error(t, cfg.Validate())
	})
	t.Run("Should reject an empty metadata filename", func(t *testing.T) {
		cfg := valid()
		cfg.MetadataFile = ""
		assert.Error(t, cfg.Validate())
	})
	t.Run("Should reject a metadata filename with separators", func(t *testing.T) {
		cfg := valid()
		cfg.MetadataFile = "nested/toolbox.json"
		assert.Error(t, cfg.Validate())
	})
	t.Run("Should reject a non-positive history limit", func(t *testing.T) {
		cfg := valid()
		cfg.HistoryLimit = 0
		assert.Error(t, cfg.Validate())
	})
	t.Run("Should reject a non-positive sample count", func(t *testing.T) {
		cfg := valid()
		cfg.SampleCount = -1
		assert.Error(t, cfg.Validate())
	})
}
