package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock for TagRepository
type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) TagNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func TestLatestVersionUseCase_Execute(t *testing.T) {
	t.Run("Should return the highest semantic-version tag", func(t *testing.T) {
		tags := new(mockTagRepository)
		tags.On("TagNames", mock.Anything).Return([]string{"v1.0.0", "v2.1.0", "v2.0.0-rc.1", "v2.0.0"}, nil)
		uc := &LatestVersionUseCase{Tags: tags}
		v, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2.1.0", v.String())
		tags.AssertExpectations(t)
	})
	t.Run("Should skip tags that are not semantic versions", func(t *testing.T) {
		tags := new(mockTagRepository)
		tags.On("TagNames", mock.Anything).Return([]string{"docs-snapshot", "v1.2.3", "release-candidate"}, nil)
		uc := &LatestVersionUseCase{Tags: tags}
		v, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", v.String())
	})
	t.Run("Should accept unprefixed tags", func(t *testing.T) {
		tags := new(mockTagRepository)
		tags.On("TagNames", mock.Anything).Return([]string{"0.9.0", "v0.10.0"}, nil)
		uc := &LatestVersionUseCase{Tags: tags}
		v, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "0.10.0", v.String())
	})
	t.Run("Should fail when no tag parses", func(t *testing.T) {
		tags := new(mockTagRepository)
		tags.On("TagNames", mock.Anything).Return([]string{"snapshot"}, nil)
		uc := &LatestVersionUseCase{Tags: tags}
		_, err := uc.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no semantic-version tags")
	})
	t.Run("Should propagate repository errors", func(t *testing.T) {
		tags := new(mockTagRepository)
		tags.On("TagNames", mock.Anything).Return([]string(nil), errors.New("boom"))
		uc := &LatestVersionUseCase{Tags: tags}
		_, err := uc.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list tags")
	})
}
