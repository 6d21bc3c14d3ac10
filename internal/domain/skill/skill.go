package skill

import "context"

// Skill is shared reference data. Names are unique exact-case; skills are
// created lazily the first time a project mentions them and never deleted.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectCount is one row of the top-skills ranking.
type ProjectCount struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProjectCount int64  `json:"project_count"`
}

type Repository interface {
	// FindOrCreate resolves names to skill rows, inserting any that are
	// missing. Losing an insert race is not an error: the unique constraint
	// is the authority and the winner's row is returned.
	FindOrCreate(ctx context.Context, names []string) ([]Skill, error)
	ListAll(ctx context.Context) ([]Skill, error)
	// TopByProjectCount ranks skills by number of linked projects, count
	// descending then id ascending. Skills with no links are excluded.
	TopByProjectCount(ctx context.Context, limit int) ([]ProjectCount, error)
}

// TopCache sits in front of TopByProjectCount. Implementations must be safe
// to skip entirely (a nil cache is handled by callers).
type TopCache interface {
	Get(ctx context.Context) ([]ProjectCount, bool)
	Set(ctx context.Context, entries []ProjectCount)
	Invalidate(ctx context.Context)
}
