package domain

import (
	"fmt"
	"time"
)

// Toolbox is the metadata record for a toolbox directory. The embedded
// version serializes as its canonical string.
type Toolbox struct {
	Name       string    `json:"name"`
	Version    *Version  `json:"version"`
	Author     string    `json:"author,omitempty"`
	Repository string    `json:"repository,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks that the record carries the required fields.
func (t *Toolbox) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("toolbox name cannot be empty")
	}
	if t.Version == nil {
		return fmt.Errorf("toolbox %q has no version", t.Name)
	}
	return nil
}

// WithVersion returns a copy of the record carrying the given version and a
// refreshed update timestamp.
func (t *Toolbox) WithVersion(v *Version) *Toolbox {
	updated := *t
	updated.Version = v
	updated.UpdatedAt = time.Now().UTC()
	return &updated
}
