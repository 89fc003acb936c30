package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

const taskColumns = `task_id, title, description, ministry, assignee_member_id, due_date, status, created_at, created_by, last_updated_at, last_updated_by`

// PgxTaskRepository persists ministry tasks in PostgreSQL.
type PgxTaskRepository struct {
	pool *pgxpool.Pool
}

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{pool: pool}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t        domain.Task
		assignee sql.NullString
	)
	err := row.Scan(
		&t.TaskID,
		&t.Title,
		&t.Description,
		&t.Ministry,
		&assignee,
		&t.DueDate,
		&t.Status,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	t.AssigneeMemberID = assignee.String
	return &t, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.pool.Exec(ctx, query,
		task.TaskID,
		task.Title,
		task.Description,
		task.Ministry,
		nullIfEmpty(task.AssigneeMemberID),
		task.DueDate,
		task.Status,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: assignee member does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save task %s: %w", task.TaskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1;`
	t, err := scanTask(r.pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID %s: %w", taskID, err)
	}
	return t, nil
}

func (r *PgxTaskRepository) ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY due_date NULLS LAST, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, ministry = $4, assignee_member_id = $5, due_date = $6, status = $7, last_updated_at = $8, last_updated_by = $9
		WHERE task_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		task.TaskID,
		task.Title,
		task.Description,
		task.Ministry,
		nullIfEmpty(task.AssigneeMemberID),
		task.DueDate,
		task.Status,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: assignee member does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
