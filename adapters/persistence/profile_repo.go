package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asher09/me-api/internal/domain/profile"
	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const uniqueViolation = "23505"

func (r *postgresProfileRepo) GetComposite(ctx context.Context, id int64) (*profile.Composite, error) {
	// Deliberately not transactional: several independent reads assembled
	// into one view. A concurrent write may interleave between queries.
	var p profile.Profile
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, linkedin_url, github_url, portfolio_url FROM profile WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.LinkedinURL, &p.GithubURL, &p.PortfolioURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", strconv.FormatInt(id, 10))
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, title, description, project_url, github_url FROM projects WHERE profile_id = $1 ORDER BY id`, id,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	projects, err := scanProjects(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachProjectSkills(ctx, projects); err != nil {
		return nil, err
	}

	education, err := r.listEducation(ctx, id)
	if err != nil {
		return nil, err
	}

	work, err := r.listWorkExperience(ctx, id)
	if err != nil {
		return nil, err
	}

	skillRows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill catalogue", err)
	}
	allSkills, err := scanSkills(skillRows)
	if err != nil {
		return nil, err
	}

	return &profile.Composite{
		Profile:        p,
		Projects:       projects,
		Education:      education,
		WorkExperience: work,
		Skills:         allSkills,
	}, nil
}

// attachProjectSkills fills each project's skill list in place. Projects
// without links get an empty list, never nil.
func (r *postgresProfileRepo) attachProjectSkills(ctx context.Context, projects []project.Project) error {
	for i := range projects {
		projects[i].Skills = []skill.Skill{}
	}
	if len(projects) == 0 {
		return nil
	}

	ids := make([]int64, len(projects))
	index := make(map[int64]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		index[p.ID] = i
	}

	rows, err := r.db.Query(ctx, `
		SELECT ps.project_id, s.id, s.name
		FROM project_skills ps
		JOIN skills s ON ps.skill_id = s.id
		WHERE ps.project_id = ANY($1)
		ORDER BY s.id
	`, ids)
	if err != nil {
		return apperror.NewInternal("failed to query project skills", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		var s skill.Skill
		if err := rows.Scan(&projectID, &s.ID, &s.Name); err != nil {
			return apperror.NewInternal("failed to scan project skill", err)
		}
		if i, ok := index[projectID]; ok {
			projects[i].Skills = append(projects[i].Skills, s)
		}
	}
	if err := rows.Err(); err != nil {
		return apperror.NewInternal("error iterating project skills", err)
	}
	return nil
}

func (r *postgresProfileRepo) listEducation(ctx context.Context, profileID int64) ([]profile.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, school, degree, start_date, end_date FROM education WHERE profile_id = $1 ORDER BY start_date DESC, id`, profileID,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	entries := make([]profile.Education, 0)
	for rows.Next() {
		var e profile.Education
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.School, &e.Degree, &e.StartDate, &e.EndDate); err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresProfileRepo) listWorkExperience(ctx context.Context, profileID int64) ([]profile.WorkExperience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, company, position, description, start_date, end_date FROM work_experience WHERE profile_id = $1 ORDER BY start_date DESC, id`, profileID,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experience", err)
	}
	defer rows.Close()

	entries := make([]profile.WorkExperience, 0)
	for rows.Next() {
		var w profile.WorkExperience
		if err := rows.Scan(&w.ID, &w.ProfileID, &w.Company, &w.Position, &w.Description, &w.StartDate, &w.EndDate); err != nil {
			return nil, apperror.NewInternal("failed to scan work experience row", err)
		}
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return entries, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile, projects []project.Draft) (*profile.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	created := &profile.Profile{}
	err = tx.QueryRow(ctx, `
		INSERT INTO profile (name, email, linkedin_url, github_url, portfolio_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, linkedin_url, github_url, portfolio_url
	`, p.Name, p.Email, p.LinkedinURL, p.GithubURL, p.PortfolioURL).Scan(
		&created.ID, &created.Name, &created.Email, &created.LinkedinURL, &created.GithubURL, &created.PortfolioURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.NewConflict("profile", "email", p.Email)
		}
		return nil, apperror.NewInternal("failed to insert profile", err)
	}

	if err := insertProjects(ctx, tx, created.ID, projects); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit profile create", err)
	}
	return created, nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile, projects []project.Draft, replaceProjects bool) (*profile.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	updated := &profile.Profile{}
	err = tx.QueryRow(ctx, `
		UPDATE profile
		SET name = $1, email = $2, linkedin_url = $3, github_url = $4, portfolio_url = $5
		WHERE id = $6
		RETURNING id, name, email, linkedin_url, github_url, portfolio_url
	`, p.Name, p.Email, p.LinkedinURL, p.GithubURL, p.PortfolioURL, p.ID).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.LinkedinURL, &updated.GithubURL, &updated.PortfolioURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", strconv.FormatInt(p.ID, 10))
		}
		if isUniqueViolation(err) {
			return nil, apperror.NewConflict("profile", "email", p.Email)
		}
		return nil, apperror.NewInternal("failed to update profile", err)
	}

	if replaceProjects {
		// Dropping the rows cascades away their project_skills links.
		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE profile_id = $1`, updated.ID); err != nil {
			return nil, apperror.NewInternal("failed to delete old projects", err)
		}
		if err := insertProjects(ctx, tx, updated.ID, projects); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit profile update", err)
	}
	return updated, nil
}

// insertProjects persists drafts and their skill links inside the caller's
// transaction. Skill names go through the same resolver as standalone
// resolution; duplicate links are ignored, not errors.
func insertProjects(ctx context.Context, tx pgx.Tx, profileID int64, drafts []project.Draft) error {
	for _, draft := range drafts {
		var projectID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO projects (profile_id, title, description, project_url, github_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, profileID, draft.Title, draft.Description, draft.ProjectURL, draft.GithubURL).Scan(&projectID)
		if err != nil {
			return apperror.NewInternal(fmt.Sprintf("failed to insert project %q", draft.Title), err)
		}

		skills, err := resolveSkills(ctx, tx, draft.SkillNames)
		if err != nil {
			return err
		}

		for _, s := range skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				projectID, s.ID,
			)
			if err != nil {
				return apperror.NewInternal("failed to link project skill", err)
			}
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
