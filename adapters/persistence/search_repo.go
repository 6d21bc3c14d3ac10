package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/internal/domain/search"
	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type postgresSearchRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSearchRepo(db *pgxpool.Pool, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{db: db, logger: logger}
}

func (r *postgresSearchRepo) SearchProjects(ctx context.Context, profileID int64, q string) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, title, description, project_url, github_url
		FROM projects
		WHERE (title ILIKE $1 OR description ILIKE $1) AND profile_id = $2
		ORDER BY id
	`, "%"+q+"%", profileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to search projects", err)
	}
	return scanProjects(rows)
}

func (r *postgresSearchRepo) SearchSkills(ctx context.Context, q string) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM skills WHERE name ILIKE $1 ORDER BY id`, "%"+q+"%",
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to search skills", err)
	}
	return scanSkills(rows)
}
