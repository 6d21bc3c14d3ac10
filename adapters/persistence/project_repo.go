package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanProjects(rows pgx.Rows) ([]project.Project, error) {
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.ProjectURL, &p.GithubURL); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) List(ctx context.Context, profileID int64, filter project.ListFilter) ([]project.Project, error) {
	builder := psql.Select("p.id, p.profile_id, p.title, p.description, p.project_url, p.github_url").
		From("projects p").
		Where(sq.Eq{"p.profile_id": profileID}).
		OrderBy("p.id")

	if filter.Skill != "" {
		builder = builder.
			Join("project_skills ps ON p.id = ps.project_id").
			Join("skills s ON ps.skill_id = s.id").
			Where("LOWER(s.name) = LOWER(?)", filter.Skill)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	builder = builder.Limit(uint64(limit)).Offset(uint64((page - 1) * limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows)
}
