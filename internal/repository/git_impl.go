package repository

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// gitTagRepository is the implementation of the TagRepository interface.
// It only reads local refs; no remote is ever contacted.

type gitTagRepository struct {
	repo *git.Repository
}

// NewTagRepository opens the git repository at path.
func NewTagRepository(path string) (TagRepository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &gitTagRepository{repo: repo}, nil
}

// TagNames returns the short names of all local tags, lightweight and
// annotated alike.
func (r *gitTagRepository) TagNames(_ context.Context) ([]string, error) {
	tagRefs, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	var names []string
	if err := tagRefs.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return names, nil
}
