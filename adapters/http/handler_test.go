package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileUC "github.com/asher09/me-api/internal/application/usecase/profile"
	projectUC "github.com/asher09/me-api/internal/application/usecase/project"
	searchUC "github.com/asher09/me-api/internal/application/usecase/search"
	skillUC "github.com/asher09/me-api/internal/application/usecase/skill"
	"github.com/asher09/me-api/internal/domain/profile"
	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

const testProfileID int64 = 1

type stubProfileRepo struct {
	composite *profile.Composite
	getErr    error
	created   *profile.Profile
	createErr error
	updated   *profile.Profile
	updateErr error
}

func (s *stubProfileRepo) GetComposite(ctx context.Context, id int64) (*profile.Composite, error) {
	return s.composite, s.getErr
}

func (s *stubProfileRepo) Create(ctx context.Context, p *profile.Profile, projects []project.Draft) (*profile.Profile, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubProfileRepo) Update(ctx context.Context, p *profile.Profile, projects []project.Draft, replaceProjects bool) (*profile.Profile, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

type stubProjectRepo struct {
	projects []project.Project
	err      error
}

func (s *stubProjectRepo) List(ctx context.Context, profileID int64, filter project.ListFilter) ([]project.Project, error) {
	return s.projects, s.err
}

type stubSkillRepo struct {
	counts []skill.ProjectCount
	err    error
}

func (s *stubSkillRepo) FindOrCreate(ctx context.Context, names []string) ([]skill.Skill, error) {
	return nil, nil
}
func (s *stubSkillRepo) ListAll(ctx context.Context) ([]skill.Skill, error) { return nil, nil }
func (s *stubSkillRepo) TopByProjectCount(ctx context.Context, limit int) ([]skill.ProjectCount, error) {
	return s.counts, s.err
}

type stubSearchRepo struct {
	projects []project.Project
	skills   []skill.Skill
	err      error
}

func (s *stubSearchRepo) SearchProjects(ctx context.Context, profileID int64, q string) ([]project.Project, error) {
	return s.projects, s.err
}
func (s *stubSearchRepo) SearchSkills(ctx context.Context, q string) ([]skill.Skill, error) {
	return s.skills, s.err
}

type testRepos struct {
	profile *stubProfileRepo
	project *stubProjectRepo
	skill   *stubSkillRepo
	search  *stubSearchRepo
}

func newTestRouter(repos testRepos) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	if repos.profile == nil {
		repos.profile = &stubProfileRepo{}
	}
	if repos.project == nil {
		repos.project = &stubProjectRepo{}
	}
	if repos.skill == nil {
		repos.skill = &stubSkillRepo{}
	}
	if repos.search == nil {
		repos.search = &stubSearchRepo{}
	}

	profileHandler := NewProfileHandler(
		profileUC.NewGetProfileUseCase(repos.profile),
		profileUC.NewCreateProfileUseCase(repos.profile, nil, nil, log),
		profileUC.NewUpdateProfileUseCase(repos.profile, nil, nil, log),
		testProfileID,
		log,
	)
	projectHandler := NewProjectHandler(projectUC.NewListProjectsUseCase(repos.project, log), testProfileID, log)
	skillHandler := NewSkillHandler(skillUC.NewTopSkillsUseCase(repos.skill, nil, log), log)
	searchHandler := NewSearchHandler(searchUC.NewSearchUseCase(repos.search, log), testProfileID, log)

	return NewRouter(profileHandler, projectHandler, skillHandler, searchHandler, log)
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(testRepos{})

	w := doRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
}

func TestGetProfileReturnsComposite(t *testing.T) {
	router := newTestRouter(testRepos{profile: &stubProfileRepo{
		composite: &profile.Composite{
			Profile: profile.Profile{ID: 1, Name: "Aman", Email: "aman@example.com"},
			Projects: []project.Project{
				{ID: 1, ProfileID: 1, Title: "API", Skills: []skill.Skill{{ID: 1, Name: "Go"}}},
				{ID: 2, ProfileID: 1, Title: "UI", Skills: []skill.Skill{}},
			},
			Education:      []profile.Education{},
			WorkExperience: []profile.WorkExperience{},
			Skills:         []skill.Skill{{ID: 1, Name: "Go"}},
		},
	}})

	w := doRequest(router, http.MethodGet, "/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var projects []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["projects"], &projects))
	require.Len(t, projects, 2)

	// Every project carries a skills array, empty included.
	for _, p := range projects {
		skillsRaw, ok := p["skills"]
		require.True(t, ok, "project response must always carry skills")
		var skills []map[string]any
		require.NoError(t, json.Unmarshal(skillsRaw, &skills))
		assert.NotNil(t, skills)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	router := newTestRouter(testRepos{profile: &stubProfileRepo{
		getErr: apperror.NewNotFound("profile", "1"),
	}})

	w := doRequest(router, http.MethodGet, "/profile", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProfileMissingEmailRejected(t *testing.T) {
	router := newTestRouter(testRepos{})

	w := doRequest(router, http.MethodPost, "/profile", gin.H{"name": "Aman"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProfileDuplicateEmailConflicts(t *testing.T) {
	router := newTestRouter(testRepos{profile: &stubProfileRepo{
		createErr: apperror.NewConflict("profile", "email", "aman@example.com"),
	}})

	w := doRequest(router, http.MethodPost, "/profile", gin.H{
		"name":  "Aman",
		"email": "aman@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateProfileReturns201(t *testing.T) {
	router := newTestRouter(testRepos{profile: &stubProfileRepo{
		created: &profile.Profile{ID: 2, Name: "Aman", Email: "aman@example.com"},
	}})

	w := doRequest(router, http.MethodPost, "/profile", gin.H{
		"name":  "Aman",
		"email": "aman@example.com",
		"projects": []gin.H{
			{"title": "API", "skills": []string{"Go", "SQL"}},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(2), created.ID)
}

func TestUpdateProfileInvalidIDRejected(t *testing.T) {
	router := newTestRouter(testRepos{})

	w := doRequest(router, http.MethodPut, "/profile/abc", gin.H{
		"name":  "Aman",
		"email": "aman@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileUnknownIDNotFound(t *testing.T) {
	router := newTestRouter(testRepos{profile: &stubProfileRepo{
		updateErr: apperror.NewNotFound("profile", "99"),
	}})

	w := doRequest(router, http.MethodPut, "/profile/99", gin.H{
		"name":  "Aman",
		"email": "aman@example.com",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectsEmptyIs200(t *testing.T) {
	router := newTestRouter(testRepos{project: &stubProjectRepo{projects: []project.Project{}}})

	w := doRequest(router, http.MethodGet, "/projects?skill=Cobol", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTopSkillsResponseShape(t *testing.T) {
	router := newTestRouter(testRepos{skill: &stubSkillRepo{counts: []skill.ProjectCount{
		{ID: 1, Name: "Go", ProjectCount: 2},
		{ID: 3, Name: "React", ProjectCount: 1},
	}}})

	w := doRequest(router, http.MethodGet, "/skills/top", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body []TopSkillDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Go", body[0].Name)
	assert.Equal(t, int64(2), body[0].ProjectCount)
}

func TestSearchMissingQueryRejected(t *testing.T) {
	router := newTestRouter(testRepos{})

	w := doRequest(router, http.MethodGet, "/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEmptyResultIs200(t *testing.T) {
	router := newTestRouter(testRepos{search: &stubSearchRepo{
		projects: []project.Project{},
		skills:   []skill.Skill{},
	}})

	w := doRequest(router, http.MethodGet, "/search?q=nothing", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"projects":[],"skills":[]}`, w.Body.String())
}

func TestSearchStoreErrorHidesDetails(t *testing.T) {
	router := newTestRouter(testRepos{search: &stubSearchRepo{
		err: apperror.NewInternal("pgx: connection refused at 10.0.0.5", nil),
	}})

	w := doRequest(router, http.MethodGet, "/search?q=API", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestRequestIDEchoedBack(t *testing.T) {
	router := newTestRouter(testRepos{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "test-request-id", w.Header().Get("X-Request-ID"))
}
