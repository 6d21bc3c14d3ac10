package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type fakeSearchRepo struct {
	projects    []project.Project
	skills      []skill.Skill
	projectsErr error
	skillsErr   error
	calls       int
}

func (f *fakeSearchRepo) SearchProjects(ctx context.Context, profileID int64, q string) ([]project.Project, error) {
	f.calls++
	return f.projects, f.projectsErr
}

func (f *fakeSearchRepo) SearchSkills(ctx context.Context, q string) ([]skill.Skill, error) {
	f.calls++
	return f.skills, f.skillsErr
}

func TestSearchEmptyQueryRejectedBeforeStore(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := NewSearchUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), SearchInput{ProfileID: 1, Query: ""})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Zero(t, repo.calls, "store must not be touched for an invalid query")
}

func TestSearchListsAreIndependent(t *testing.T) {
	repo := &fakeSearchRepo{
		projects: []project.Project{{ID: 1, Title: "API"}},
		skills:   []skill.Skill{},
	}
	uc := NewSearchUseCase(repo, logger.NewNop())

	output, err := uc.Execute(context.Background(), SearchInput{ProfileID: 1, Query: "API"})

	require.NoError(t, err)
	assert.Len(t, output.Result.Projects, 1)
	assert.Empty(t, output.Result.Skills)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	repo := &fakeSearchRepo{projects: []project.Project{}, skills: []skill.Skill{}}
	uc := NewSearchUseCase(repo, logger.NewNop())

	output, err := uc.Execute(context.Background(), SearchInput{ProfileID: 1, Query: "nothing-matches"})

	require.NoError(t, err)
	assert.NotNil(t, output.Result.Projects)
	assert.NotNil(t, output.Result.Skills)
	assert.Empty(t, output.Result.Projects)
	assert.Empty(t, output.Result.Skills)
}

func TestSearchPropagatesStoreError(t *testing.T) {
	repo := &fakeSearchRepo{projectsErr: apperror.NewInternal("db down", errors.New("broken"))}
	uc := NewSearchUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), SearchInput{ProfileID: 1, Query: "API"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInternal))
}
