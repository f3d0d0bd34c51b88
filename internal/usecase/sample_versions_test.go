package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

func TestSampleVersionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	t.Run("Should generate the requested number of valid versions", func(t *testing.T) {
		uc := NewSampleVersionsUseCase(42)
		versions, err := uc.Execute(ctx, 50)
		require.NoError(t, err)
		require.Len(t, versions, 50)
		for _, v := range versions {
			assert.Truef(t, domain.Valid(v.String()), "generated %q", v)
		}
	})
	t.Run("Should be deterministic for a fixed seed", func(t *testing.T) {
		first, err := NewSampleVersionsUseCase(7).Execute(ctx, 10)
		require.NoError(t, err)
		second, err := NewSampleVersionsUseCase(7).Execute(ctx, 10)
		require.NoError(t, err)
		require.Len(t, second, len(first))
		for i := range first {
			assert.True(t, first[i].Identical(second[i]))
		}
	})
	t.Run("Should reject non-positive counts", func(t *testing.T) {
		uc := NewSampleVersionsUseCase(1)
		_, err := uc.Execute(ctx, 0)
		require.Error(t, err)
		_, err = uc.Execute(ctx, -3)
		require.Error(t, err)
	})
	t.Run("Should produce versions that sort without error", func(t *testing.T) {
		uc := NewSampleVersionsUseCase(99)
		versions, err := uc.Execute(ctx, 25)
		require.NoError(t, err)
		sorted := domain.SortAscending(versions)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Compare(sorted[i]), 0)
		}
	})
}
