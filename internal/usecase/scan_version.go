package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/jsmithnh09/GitLAB/internal/domain"
	"github.com/jsmithnh09/GitLAB/internal/repository"
)

// versionCandidateRE finds substrings shaped like a semantic version. Each
// candidate still has to survive the full parse, so loose matches here are
// harmless.
var versionCandidateRE = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?`)

// ScanVersionUseCase contains the logic for the scan command.

type ScanVersionUseCase struct {
	FS repository.FileSystemRepository
}

// FindFirst scans r line by line and returns the first substring that parses
// as a semantic version. Lines without one are skipped.
func (uc *ScanVersionUseCase) FindFirst(r io.Reader) (*domain.Version, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, candidate := range versionCandidateRE.FindAllString(scanner.Text(), -1) {
			if v, err := domain.NewVersion(candidate); err == nil {
				return v, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan input: %w", err)
	}
	return nil, fmt.Errorf("no semantic version found in input")
}

// ExecuteFile scans the named file for its first semantic version.
func (uc *ScanVersionUseCase) ExecuteFile(_ context.Context, path string) (*domain.Version, error) {
	f, err := uc.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	v, err := uc.FindFirst(f)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return v, nil
}
