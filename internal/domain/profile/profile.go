package profile

import (
	"context"
	"time"

	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/skill"
)

type Profile struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
}

type Education struct {
	ID        int64      `json:"id"`
	ProfileID int64      `json:"profile_id"`
	School    string     `json:"school"`
	Degree    string     `json:"degree"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type WorkExperience struct {
	ID          int64      `json:"id"`
	ProfileID   int64      `json:"profile_id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// Composite is the full profile view: owned projects with their skill lists,
// education and work history, plus the global skill catalogue.
type Composite struct {
	Profile
	Projects       []project.Project `json:"projects"`
	Education      []Education       `json:"education"`
	WorkExperience []WorkExperience  `json:"work_experience"`
	Skills         []skill.Skill     `json:"skills"`
}

type Repository interface {
	// GetComposite assembles the full view. The reads are not wrapped in a
	// transaction; a concurrent write may interleave. Accepted as relaxed
	// consistency for a single-profile, low-traffic system.
	GetComposite(ctx context.Context, id int64) (*Composite, error)

	// Create inserts the profile and, when drafts are given, its projects
	// with resolved skill links, all in one transaction.
	Create(ctx context.Context, p *Profile, projects []project.Draft) (*Profile, error)

	// Update rewrites the scalar fields. When replaceProjects is true the
	// drafts become the complete project set: existing projects (and their
	// skill links, by cascade) are deleted first. Everything runs in one
	// transaction; any failure leaves the profile untouched.
	Update(ctx context.Context, p *Profile, projects []project.Draft, replaceProjects bool) (*Profile, error)
}
