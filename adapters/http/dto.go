package http

import (
	"github.com/asher09/me-api/internal/domain/profile"
	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/search"
	"github.com/asher09/me-api/internal/domain/skill"
)

// Profile DTOs

type ProjectDraftRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ProjectURL  *string  `json:"project_url"`
	GithubURL   *string  `json:"github_url"`
	Skills      []string `json:"skills"`
}

type CreateProfileRequest struct {
	Name         string                `json:"name" binding:"required"`
	Email        string                `json:"email" binding:"required"`
	LinkedinURL  *string               `json:"linkedin_url"`
	GithubURL    *string               `json:"github_url"`
	PortfolioURL *string               `json:"portfolio_url"`
	Projects     []ProjectDraftRequest `json:"projects"`
}

type UpdateProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
	// A nil Projects leaves the existing project set untouched; a present
	// (even empty) array is the complete replacement.
	Projects *[]ProjectDraftRequest `json:"projects"`
}

func toDomainDrafts(reqs []ProjectDraftRequest) []project.Draft {
	drafts := make([]project.Draft, len(reqs))
	for i, r := range reqs {
		drafts[i] = project.Draft{
			Title:       r.Title,
			Description: r.Description,
			ProjectURL:  r.ProjectURL,
			GithubURL:   r.GithubURL,
			SkillNames:  r.Skills,
		}
	}
	return drafts
}

type ProfileDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		LinkedinURL:  p.LinkedinURL,
		GithubURL:    p.GithubURL,
		PortfolioURL: p.PortfolioURL,
	}
}

type CompositeProfileDTO struct {
	ProfileDTO
	Projects       []ProjectDTO        `json:"projects"`
	Education      []profile.Education `json:"education"`
	WorkExperience []profile.WorkExperience `json:"work_experience"`
	Skills         []SkillDTO          `json:"skills"`
}

func ToCompositeProfileDTO(p *profile.Composite) CompositeProfileDTO {
	return CompositeProfileDTO{
		ProfileDTO:     ToProfileDTO(&p.Profile),
		Projects:       ToProjectDTOs(p.Projects),
		Education:      p.Education,
		WorkExperience: p.WorkExperience,
		Skills:         ToSkillDTOs(p.Skills),
	}
}

// Project DTOs

// ProjectDTO carries the nested skill list; the composite profile response
// always includes it, empty when the project has no links.
type ProjectDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ProjectURL  *string    `json:"project_url"`
	GithubURL   *string    `json:"github_url"`
	Skills      []SkillDTO `json:"skills"`
}

// ProjectSummaryDTO is the bare row used by list and search responses.
type ProjectSummaryDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ProjectURL  *string `json:"project_url"`
	GithubURL   *string `json:"github_url"`
}

func ToProjectDTO(p project.Project) ProjectDTO {
	skills := p.Skills
	if skills == nil {
		skills = []skill.Skill{}
	}
	return ProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ProjectURL:  p.ProjectURL,
		GithubURL:   p.GithubURL,
		Skills:      ToSkillDTOs(skills),
	}
}

func ToProjectDTOs(projects []project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

func ToProjectSummaryDTO(p project.Project) ProjectSummaryDTO {
	return ProjectSummaryDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ProjectURL:  p.ProjectURL,
		GithubURL:   p.GithubURL,
	}
}

func ToProjectSummaryDTOs(projects []project.Project) []ProjectSummaryDTO {
	dtos := make([]ProjectSummaryDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectSummaryDTO(p)
	}
	return dtos
}

// Skill DTOs

type SkillDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToSkillDTOs(skills []skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = SkillDTO(s)
	}
	return dtos
}

type TopSkillDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProjectCount int64  `json:"project_count"`
}

func ToTopSkillDTOs(counts []skill.ProjectCount) []TopSkillDTO {
	dtos := make([]TopSkillDTO, len(counts))
	for i, c := range counts {
		dtos[i] = TopSkillDTO(c)
	}
	return dtos
}

// Search DTOs

type SearchResponseDTO struct {
	Projects []ProjectSummaryDTO `json:"projects"`
	Skills   []SkillDTO          `json:"skills"`
}

func ToSearchResponseDTO(r search.Result) SearchResponseDTO {
	return SearchResponseDTO{
		Projects: ToProjectSummaryDTOs(r.Projects),
		Skills:   ToSkillDTOs(r.Skills),
	}
}
