package project

import (
	"context"

	"github.com/asher09/me-api/internal/domain/skill"
)

type Project struct {
	ID          int64         `json:"id"`
	ProfileID   int64         `json:"profile_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ProjectURL  *string       `json:"project_url"`
	GithubURL   *string       `json:"github_url"`
	Skills      []skill.Skill `json:"skills"`
}

// Draft is a project as submitted in a profile write, before it has an id.
// SkillNames are resolved through the skill repository when the draft is
// persisted.
type Draft struct {
	Title       string
	Description string
	ProjectURL  *string
	GithubURL   *string
	SkillNames  []string
}

type ListFilter struct {
	// Skill filters to projects linked to a skill with this exact name,
	// compared case-insensitively. Empty means no filter.
	Skill string
	Limit int
	Page  int
}

type Repository interface {
	// List returns bare project rows (no skill lists attached) for one
	// profile, optionally filtered by linked skill name.
	List(ctx context.Context, profileID int64, filter ListFilter) ([]Project, error)
}
