package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsmithnh09/GitLAB/internal/domain"
	"github.com/jsmithnh09/GitLAB/internal/repository"
)

// LatestVersionUseCase contains the logic for the latest command.

type LatestVersionUseCase struct {
	Tags repository.TagRepository
}

// Execute returns the highest semantic version among the repository's local
// tags. Tags that do not parse as versions are skipped; a single leading "v"
// is tolerated since release tags conventionally carry one.
func (uc *LatestVersionUseCase) Execute(ctx context.Context) (*domain.Version, error) {
	names, err := uc.Tags.TagNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	var versions []*domain.Version
	for _, name := range names {
		v, err := domain.NewVersion(strings.TrimPrefix(name, "v"))
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("no semantic-version tags found")
	}
	sorted := domain.SortAscending(versions)
	return sorted[len(sorted)-1], nil
}
