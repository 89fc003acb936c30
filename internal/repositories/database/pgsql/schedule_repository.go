package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

const scheduleColumns = `schedule_id, title, ministry, starts_at, ends_at, location, assigned_member_ids, created_at, created_by, last_updated_at, last_updated_by`

// PgxScheduleRepository persists ministry schedules in PostgreSQL. The
// assigned member IDs live in a text[] column; pgx maps it to []string
// directly.
type PgxScheduleRepository struct {
	pool *pgxpool.Pool
}

func newPgxScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepository {
	return &PgxScheduleRepository{pool: pool}
}

var _ portsrepo.ScheduleRepository = (*PgxScheduleRepository)(nil)

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(
		&s.ScheduleID,
		&s.Title,
		&s.Ministry,
		&s.StartsAt,
		&s.EndsAt,
		&s.Location,
		&s.AssignedMemberIDs,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if s.AssignedMemberIDs == nil {
		s.AssignedMemberIDs = []string{}
	}
	return &s, nil
}

func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	query := `INSERT INTO schedules (` + scheduleColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.pool.Exec(ctx, query,
		schedule.ScheduleID,
		schedule.Title,
		schedule.Ministry,
		schedule.StartsAt,
		schedule.EndsAt,
		schedule.Location,
		schedule.AssignedMemberIDs,
		schedule.CreatedAt,
		schedule.CreatedBy,
		schedule.LastUpdatedAt,
		schedule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule %s: %w", schedule.ScheduleID, err)
	}
	return nil
}

func (r *PgxScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE schedule_id = $1;`
	s, err := scanSchedule(r.pool.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find schedule by ID %s: %w", scheduleID, err)
	}
	return s, nil
}

func (r *PgxScheduleRepository) ListSchedules(ctx context.Context, limit, offset int) ([]domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY starts_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]domain.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		schedules = append(schedules, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}
	return schedules, nil
}

func (r *PgxScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule) error {
	query := `
		UPDATE schedules
		SET title = $2, ministry = $3, starts_at = $4, ends_at = $5, location = $6, assigned_member_ids = $7, last_updated_at = $8, last_updated_by = $9
		WHERE schedule_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		schedule.ScheduleID,
		schedule.Title,
		schedule.Ministry,
		schedule.StartsAt,
		schedule.EndsAt,
		schedule.Location,
		schedule.AssignedMemberIDs,
		schedule.LastUpdatedAt,
		schedule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule %s: %w", schedule.ScheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE schedule_id = $1;`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule %s: %w", scheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
