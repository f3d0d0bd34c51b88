package repository

import "context"

// TagRepository lists the tags of a local git repository.
type TagRepository interface {
	TagNames(ctx context.Context) ([]string, error)
}
