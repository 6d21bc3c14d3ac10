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

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	topCache    skill.TopCache
	events      *event.ProfileEventProducer
	logger      logger.Logger
}

func NewCreateProfileUseCase(repo profile.Repository, cache skill.TopCache, events *event.ProfileEventProducer, log logger.Logger) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: repo,
		topCache:    cache,
		events:      events,
		logger:      log,
	}
}

type CreateProfileInput struct {
	Name         string
	Email        string
	LinkedinURL  *string
	GithubURL    *string
	PortfolioURL *string
	Projects     []project.Draft
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	p := &profile.Profile{
		Name:         input.Name,
		Email:        input.Email,
		LinkedinURL:  input.LinkedinURL,
		GithubURL:    input.GithubURL,
		PortfolioURL: input.PortfolioURL,
	}

	created, err := uc.profileRepo.Create(ctx, p, input.Projects)
	if err != nil {
		return nil, fmt.Errorf("create profile failed: %w", err)
	}

	if uc.topCache != nil {
		uc.topCache.Invalidate(ctx)
	}

	if uc.events != nil {
		go func() {
			err := uc.events.Publish(context.Background(), event.ProfileEventTypeCreated, created.ID)
			if err != nil {
				uc.logger.Error("failed to publish profile 'created' event", err, zap.Int64("profile_id", created.ID))
			}
		}()
	}

	return &CreateProfileOutput{Profile: created}, nil
}
