package search

import (
	"context"

	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/skill"
)

// Result holds the two independently computed match lists. Either may be
// empty while the other is not; there is no cross-ranking.
type Result struct {
	Projects []project.Project `json:"projects"`
	Skills   []skill.Skill     `json:"skills"`
}

type Repository interface {
	// SearchProjects matches q as a case-insensitive substring of the title
	// or description, scoped to one profile.
	SearchProjects(ctx context.Context, profileID int64, q string) ([]project.Project, error)
	// SearchSkills matches q as a case-insensitive substring of the name,
	// across the global catalogue.
	SearchSkills(ctx context.Context, q string) ([]skill.Skill, error)
}
