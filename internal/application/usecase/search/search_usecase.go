package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/asher09/me-api/internal/domain/search"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type SearchUseCase struct {
	searchRepo search.Repository
	logger     logger.Logger
}

func NewSearchUseCase(sr search.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{searchRepo: sr, logger: log}
}

type SearchInput struct {
	ProfileID int64
	Query     string
}

type SearchOutput struct {
	Result search.Result
}

func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if input.Query == "" {
		return nil, apperror.NewInvalidInput("'q' query param is required", nil)
	}

	uc.logger.Debug("executing search", zap.String("query", input.Query), zap.Int64("profile_id", input.ProfileID))

	// The two lists are independent: a project can match while no skill
	// does, and the other way around.
	projects, err := uc.searchRepo.SearchProjects(ctx, input.ProfileID, input.Query)
	if err != nil {
		uc.logger.Error("project search failed", err)
		return nil, err
	}

	skills, err := uc.searchRepo.SearchSkills(ctx, input.Query)
	if err != nil {
		uc.logger.Error("skill search failed", err)
		return nil, err
	}

	return &SearchOutput{Result: search.Result{Projects: projects, Skills: skills}}, nil
}
