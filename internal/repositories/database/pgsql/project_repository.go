package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

const projectColumns = `project_id, name, description, planned_budget, executed_budget, created_at, created_by, last_updated_at, last_updated_by`

// PgxProjectRepository persists projects in PostgreSQL.
type PgxProjectRepository struct {
	pool *pgxpool.Pool
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{pool: pool}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.PlannedBudget,
		&p.ExecutedBudget,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `INSERT INTO financial_projects (` + projectColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Description,
		project.PlannedBudget,
		project.ExecutedBudget,
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: project %q already exists", apperrors.ErrDuplicate, project.Name)
		}
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM financial_projects WHERE project_id = $1;`
	p, err := scanProject(r.pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	return p, nil
}

// ListProjects retrieves projects ordered by name.
func (r *PgxProjectRepository) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM financial_projects ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// UpdateProject overwrites the mutable fields of a project.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE financial_projects
		SET name = $2, description = $3, planned_budget = $4, executed_budget = $5, last_updated_at = $6, last_updated_by = $7
		WHERE project_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Description,
		project.PlannedBudget,
		project.ExecutedBudget,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project; transactions keep their project reference
// from being deleted via a RESTRICT foreign key.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM financial_projects WHERE project_id = $1;`, projectID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: project %s is referenced by transactions", apperrors.ErrConflict, projectID)
		}
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
