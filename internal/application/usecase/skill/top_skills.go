package skill

import (
	"context"

	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/logger"
)

// TopSkillsLimit caps the ranking at the five most-linked skills.
const TopSkillsLimit = 5

type TopSkillsUseCase struct {
	skillRepo skill.Repository
	topCache  skill.TopCache
	logger    logger.Logger
}

func NewTopSkillsUseCase(sRepo skill.Repository, cache skill.TopCache, log logger.Logger) *TopSkillsUseCase {
	return &TopSkillsUseCase{skillRepo: sRepo, topCache: cache, logger: log}
}

type TopSkillsOutput struct {
	Skills []skill.ProjectCount
}

func (uc *TopSkillsUseCase) Execute(ctx context.Context) (*TopSkillsOutput, error) {
	if uc.topCache != nil {
		if cached, ok := uc.topCache.Get(ctx); ok {
			return &TopSkillsOutput{Skills: cached}, nil
		}
	}

	counts, err := uc.skillRepo.TopByProjectCount(ctx, TopSkillsLimit)
	if err != nil {
		return nil, err
	}

	if uc.topCache != nil {
		uc.topCache.Set(ctx, counts)
	}
	return &TopSkillsOutput{Skills: counts}, nil
}
