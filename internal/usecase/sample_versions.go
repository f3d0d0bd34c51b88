package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

// samplePrereleaseTags are the identifier stems used for generated
// prerelease suffixes.
var samplePrereleaseTags = []string{"alpha", "beta", "rc"}

// SampleVersionsUseCase contains the logic for the sample command.

type SampleVersionsUseCase struct {
	rand *rand.Rand
}

// NewSampleVersionsUseCase creates a generator seeded for reproducible
// output: the same seed yields the same sample sequence.
func NewSampleVersionsUseCase(seed int64) *SampleVersionsUseCase {
	return &SampleVersionsUseCase{rand: rand.New(rand.NewSource(seed))}
}

// Execute generates count random valid versions.
func (uc *SampleVersionsUseCase) Execute(_ context.Context, count int) ([]*domain.Version, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", count)
	}
	versions := make([]*domain.Version, 0, count)
	for i := 0; i < count; i++ {
		v, err := uc.randomVersion()
		if err != nil {
			return nil, fmt.Errorf("failed to generate sample version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// randomVersion draws one version with small core components, an optional
// prerelease suffix and an optional build suffix.
func (uc *SampleVersionsUseCase) randomVersion() (*domain.Version, error) {
	major := uint64(uc.rand.Intn(10))
	minor := uint64(uc.rand.Intn(20))
	patch := uint64(uc.rand.Intn(20))
	var prerelease, build string
	if uc.rand.Intn(2) == 0 {
		prerelease = samplePrereleaseTags[uc.rand.Intn(len(samplePrereleaseTags))]
		if uc.rand.Intn(2) == 0 {
			prerelease += "." + strconv.Itoa(uc.rand.Intn(30))
		}
	}
	if uc.rand.Intn(4) == 0 {
		build = "build." + strconv.Itoa(uc.rand.Intn(1000))
	}
	return domain.NewVersionFromParts(major, minor, patch, prerelease, build)
}
