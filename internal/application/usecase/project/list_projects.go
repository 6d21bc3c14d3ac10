package project

import (
	"context"

	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewListProjectsUseCase(pRepo project.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo, logger: log}
}

type ListProjectsInput struct {
	ProfileID int64
	Skill     string
	Page      int
	Limit     int
}

type ListProjectsOutput struct {
	Projects []project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}
	if input.Page <= 0 {
		input.Page = 1
	}

	projects, err := uc.projectRepo.List(ctx, input.ProfileID, project.ListFilter{
		Skill: input.Skill,
		Limit: input.Limit,
		Page:  input.Page,
	})
	if err != nil {
		return nil, err
	}
	// No matches is a valid, empty result. Not found is reserved for
	// missing entities, not empty lists.
	return &ListProjectsOutput{Projects: projects}, nil
}
