package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so skill resolution
// can run standalone or inside the profile write transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

// resolveSkills is the upsert-by-name resolver. The bulk insert silently
// skips names that already exist (or that a concurrent resolver inserts
// first); the follow-up select returns whichever row won.
func resolveSkills(ctx context.Context, q querier, names []string) ([]skill.Skill, error) {
	if len(names) == 0 {
		return []skill.Skill{}, nil
	}

	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	insertQuery := `INSERT INTO skills (name) VALUES `
	var inserts []string
	var args []any
	for i, name := range unique {
		inserts = append(inserts, fmt.Sprintf("($%d)", i+1))
		args = append(args, name)
	}
	insertQuery += strings.Join(inserts, ",") + " ON CONFLICT (name) DO NOTHING"

	if _, err := q.Exec(ctx, insertQuery, args...); err != nil {
		return nil, apperror.NewInternal("failed to bulk insert skills", err)
	}

	rows, err := q.Query(ctx, `SELECT id, name FROM skills WHERE name = ANY($1) ORDER BY id`, unique)
	if err != nil {
		return nil, apperror.NewInternal("failed to retrieve skills", err)
	}
	return scanSkills(rows)
}

func scanSkills(rows pgx.Rows) ([]skill.Skill, error) {
	defer rows.Close()

	skills := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, apperror.NewInternal("failed to scan skill", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skills", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) FindOrCreate(ctx context.Context, names []string) ([]skill.Skill, error) {
	return resolveSkills(ctx, r.db, names)
}

func (r *postgresSkillRepo) ListAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) TopByProjectCount(ctx context.Context, limit int) ([]skill.ProjectCount, error) {
	// Inner join: skills with zero linked projects never appear.
	query := `
		SELECT s.id, s.name, COUNT(ps.project_id) AS project_count
		FROM skills s
		JOIN project_skills ps ON s.id = ps.skill_id
		GROUP BY s.id, s.name
		ORDER BY project_count DESC, s.id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to query top skills", err)
	}
	defer rows.Close()

	counts := make([]skill.ProjectCount, 0)
	for rows.Next() {
		var c skill.ProjectCount
		if err := rows.Scan(&c.ID, &c.Name, &c.ProjectCount); err != nil {
			return nil, apperror.NewInternal("failed to scan top skill", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating top skills", err)
	}
	return counts, nil
}
