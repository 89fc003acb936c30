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

const courseColumns = `course_id, title, description, ministry, is_published, created_at, created_by, last_updated_at, last_updated_by`

// PgxCourseRepository persists courses in PostgreSQL.
type PgxCourseRepository struct {
	pool *pgxpool.Pool
}

func newPgxCourseRepository(pool *pgxpool.Pool) portsrepo.CourseRepository {
	return &PgxCourseRepository{pool: pool}
}

var _ portsrepo.CourseRepository = (*PgxCourseRepository)(nil)

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	err := row.Scan(
		&c.CourseID,
		&c.Title,
		&c.Description,
		&c.Ministry,
		&c.IsPublished,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCourseRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.pool.Exec(ctx, query,
		course.CourseID,
		course.Title,
		course.Description,
		course.Ministry,
		course.IsPublished,
		course.CreatedAt,
		course.CreatedBy,
		course.LastUpdatedAt,
		course.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: course %q already exists", apperrors.ErrDuplicate, course.Title)
		}
		return fmt.Errorf("failed to save course %s: %w", course.CourseID, err)
	}
	return nil
}

func (r *PgxCourseRepository) FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id = $1;`
	c, err := scanCourse(r.pool.QueryRow(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find course by ID %s: %w", courseID, err)
	}
	return c, nil
}

func (r *PgxCourseRepository) ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY title LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

func (r *PgxCourseRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	query := `
		UPDATE courses
		SET title = $2, description = $3, ministry = $4, is_published = $5, last_updated_at = $6, last_updated_by = $7
		WHERE course_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		course.CourseID,
		course.Title,
		course.Description,
		course.Ministry,
		course.IsPublished,
		course.LastUpdatedAt,
		course.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", course.CourseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCourseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE course_id = $1;`, courseID)
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", courseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
