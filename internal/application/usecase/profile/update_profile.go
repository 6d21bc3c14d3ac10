package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asher09/me-api/adapters/event"
	"github.com/asher09/me-api/internal/domain/profile"
	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/logger"
)

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	topCache    skill.TopCache
	events      *event.ProfileEventProducer
	logger      logger.Logger
}

func NewUpdateProfileUseCase(repo profile.Repository, cache skill.TopCache, events *event.ProfileEventProducer, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: repo,
		topCache:    cache,
		events:      events,
		logger:      log,
	}
}

type UpdateProfileInput struct {
	ProfileID    int64
	Name         string
	Email        string
	LinkedinURL  *string
	GithubURL    *string
	PortfolioURL *string
	// Projects is the complete replacement set when ReplaceProjects is
	// true; an empty slice then removes every project. When false the
	// existing projects are left untouched.
	Projects        []project.Draft
	ReplaceProjects bool
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p := &profile.Profile{
		ID:           input.ProfileID,
		Name:         input.Name,
		Email:        input.Email,
		LinkedinURL:  input.LinkedinURL,
		GithubURL:    input.GithubURL,
		PortfolioURL: input.PortfolioURL,
	}

	updated, err := uc.profileRepo.Update(ctx, p, input.Projects, input.ReplaceProjects)
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	if uc.topCache != nil {
		uc.topCache.Invalidate(ctx)
	}

	if uc.events != nil {
		go func() {
			err := uc.events.Publish(context.Background(), event.ProfileEventTypeUpdated, updated.ID)
			if err != nil {
				uc.logger.Error("failed to publish profile 'updated' event", err, zap.Int64("profile_id", updated.ID))
			}
		}()
	}

	return &UpdateProfileOutput{Profile: updated}, nil
}
