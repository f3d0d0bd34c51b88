package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolbox_JSON(t *testing.T) {
	t.Run("Should serialize the version as its canonical string", func(t *testing.T) {
		tb := &Toolbox{
			Name:      "signal-kit",
			Version:   mustVersion(t, "1.2.3-rc.1+5"),
			Author:    "jsmith",
			UpdatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		data, err := json.Marshal(tb)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"version":"1.2.3-rc.1+5"`)
	})
	t.Run("Should round-trip through JSON", func(t *testing.T) {
		tb := &Toolbox{
			Name:      "signal-kit",
			Version:   mustVersion(t, "2.0.0-beta.2"),
			UpdatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		data, err := json.Marshal(tb)
		require.NoError(t, err)
		var decoded Toolbox
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, tb.Name, decoded.Name)
		require.NotNil(t, decoded.Version)
		assert.True(t, tb.Version.Identical(decoded.Version))
	})
	t.Run("Should reject a malformed version string", func(t *testing.T) {
		var decoded Toolbox
		err := json.Unmarshal([]byte(`{"name":"x","version":"1.02.3"}`), &decoded)
		require.Error(t, err)
		var malformed *MalformedVersionError
		assert.ErrorAs(t, err, &malformed)
	})
}

func TestToolbox_Validate(t *testing.T) {
	t.Run("Should accept a complete record", func(t *testing.T) {
		tb := &Toolbox{Name: "signal-kit", Version: mustVersion(t, "1.0.0")}
		assert.NoError(t, tb.Validate())
	})
	t.Run("Should reject a missing name", func(t *testing.T) {
		tb := &Toolbox{Version: mustVersion(t, "1.0.0")}
		assert.Error(t, tb.Validate())
	})
	t.Run("Should reject a missing version", func(t *testing.T) {
		tb := &Toolbox{Name: "signal-kit"}
		assert.Error(t, tb.Validate())
	})
}

func TestToolbox_WithVersion(t *testing.T) {
	t.Run("Should return a copy with the new version", func(t *testing.T) {
		tb := &Toolbox{Name: "signal-kit", Version: mustVersion(t, "1.0.0")}
		updated := tb.WithVersion(mustVersion(t, "1.1.0"))
		assert.Equal(t, "1.1.0", updated.Version.String())
		assert.Equal(t, "1.0.0", tb.Version.String())
		assert.False(t, updated.UpdatedAt.IsZero())
	})
}
