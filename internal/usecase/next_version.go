package usecase

import (
	"context"
	"fmt"

	"github.com/jsmithnh09/GitLAB/internal/domain"
)

// BumpLevel selects which version component a bump increments.
type BumpLevel string

const (
	BumpMajor BumpLevel = "major"
	BumpMinor BumpLevel = "minor"
	BumpPatch BumpLevel = "patch"
)

// ParseBumpLevel validates a user-supplied bump level.
func ParseBumpLevel(s string) (BumpLevel, error) {
	switch BumpLevel(s) {
	case BumpMajor, BumpMinor, BumpPatch:
		return BumpLevel(s), nil
	default:
		return "", fmt.Errorf("unknown bump level %q: expected major, minor or patch", s)
	}
}

// NextVersionUseCase contains the logic for the bump command.

type NextVersionUseCase struct{}

// Execute parses the current version and returns it bumped at the given
// level. Prerelease and build metadata are always cleared.
func (uc *NextVersionUseCase) Execute(_ context.Context, current string, level BumpLevel) (*domain.Version, error) {
	v, err := domain.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current version: %w", err)
	}
	switch level {
	case BumpMajor:
		return v.BumpMajor(), nil
	case BumpMinor:
		return v.BumpMinor(), nil
	case BumpPatch:
		return v.BumpPatch(), nil
	default:
		return nil, fmt.Errorf("unknown bump level %q", level)
	}
}
