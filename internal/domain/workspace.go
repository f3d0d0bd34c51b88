package domain

import "time"

// WorkspaceEntry records one toolbox directory the user has navigated to.
type WorkspaceEntry struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Toolbox   string    `json:"toolbox,omitempty"`
	VisitedAt time.Time `json:"visited_at"`
}
