package skill

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/logger"
)

type fakeSkillRepo struct {
	counts    []skill.ProjectCount
	err       error
	lastLimit int
	calls     int
}

func (f *fakeSkillRepo) FindOrCreate(ctx context.Context, names []string) ([]skill.Skill, error) {
	return nil, nil
}

func (f *fakeSkillRepo) ListAll(ctx context.Context) ([]skill.Skill, error) {
	return nil, nil
}

func (f *fakeSkillRepo) TopByProjectCount(ctx context.Context, limit int) ([]skill.ProjectCount, error) {
	f.calls++
	f.lastLimit = limit
	return f.counts, f.err
}

type fakeTopCache struct {
	entries     []skill.ProjectCount
	hit         bool
	setCalls    int
	lastSet     []skill.ProjectCount
	invalidated int
}

func (f *fakeTopCache) Get(ctx context.Context) ([]skill.ProjectCount, bool) {
	return f.entries, f.hit
}

func (f *fakeTopCache) Set(ctx context.Context, entries []skill.ProjectCount) {
	f.setCalls++
	f.lastSet = entries
}

func (f *fakeTopCache) Invalidate(ctx context.Context) {
	f.invalidated++
}

func TestTopSkillsQueriesWithFixedLimit(t *testing.T) {
	repo := &fakeSkillRepo{counts: []skill.ProjectCount{{ID: 1, Name: "Go", ProjectCount: 3}}}
	uc := NewTopSkillsUseCase(repo, nil, logger.NewNop())

	output, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, TopSkillsLimit, repo.lastLimit)
	assert.Len(t, output.Skills, 1)
}

func TestTopSkillsCacheHitSkipsStore(t *testing.T) {
	repo := &fakeSkillRepo{}
	cache := &fakeTopCache{
		entries: []skill.ProjectCount{{ID: 2, Name: "SQL", ProjectCount: 5}},
		hit:     true,
	}
	uc := NewTopSkillsUseCase(repo, cache, logger.NewNop())

	output, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, repo.calls)
	assert.Equal(t, "SQL", output.Skills[0].Name)
}

func TestTopSkillsCacheMissPopulatesCache(t *testing.T) {
	repo := &fakeSkillRepo{counts: []skill.ProjectCount{{ID: 1, Name: "Go", ProjectCount: 2}}}
	cache := &fakeTopCache{hit: false}
	uc := NewTopSkillsUseCase(repo, cache, logger.NewNop())

	_, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, repo.counts, cache.lastSet)
}

func TestTopSkillsStoreErrorNotCached(t *testing.T) {
	repo := &fakeSkillRepo{err: errors.New("db down")}
	cache := &fakeTopCache{}
	uc := NewTopSkillsUseCase(repo, cache, logger.NewNop())

	_, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.Zero(t, cache.setCalls)
}
