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

const announcementColumns = `announcement_id, title, body, ministry, is_published, created_at, created_by, last_updated_at, last_updated_by`

// PgxAnnouncementRepository persists announcements in PostgreSQL.
type PgxAnnouncementRepository struct {
	pool *pgxpool.Pool
}

func newPgxAnnouncementRepository(pool *pgxpool.Pool) portsrepo.AnnouncementRepository {
	return &PgxAnnouncementRepository{pool: pool}
}

var _ portsrepo.AnnouncementRepository = (*PgxAnnouncementRepository)(nil)

func scanAnnouncement(row pgx.Row) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(
		&a.AnnouncementID,
		&a.Title,
		&a.Body,
		&a.Ministry,
		&a.IsPublished,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAnnouncementRepository) SaveAnnouncement(ctx context.Context, a domain.Announcement) error {
	query := `INSERT INTO announcements (` + announcementColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.pool.Exec(ctx, query,
		a.AnnouncementID,
		a.Title,
		a.Body,
		a.Ministry,
		a.IsPublished,
		a.CreatedAt,
		a.CreatedBy,
		a.LastUpdatedAt,
		a.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save announcement %s: %w", a.AnnouncementID, err)
	}
	return nil
}

func (r *PgxAnnouncementRepository) FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE announcement_id = $1;`
	a, err := scanAnnouncement(r.pool.QueryRow(ctx, query, announcementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find announcement by ID %s: %w", announcementID, err)
	}
	return a, nil
}

func (r *PgxAnnouncementRepository) ListAnnouncements(ctx context.Context, limit, offset int) ([]domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	announcements := make([]domain.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}
	return announcements, nil
}

func (r *PgxAnnouncementRepository) UpdateAnnouncement(ctx context.Context, a domain.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, body = $3, ministry = $4, is_published = $5, last_updated_at = $6, last_updated_by = $7
		WHERE announcement_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		a.AnnouncementID,
		a.Title,
		a.Body,
		a.Ministry,
		a.IsPublished,
		a.LastUpdatedAt,
		a.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update announcement %s: %w", a.AnnouncementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAnnouncementRepository) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE announcement_id = $1;`, announcementID)
	if err != nil {
		return fmt.Errorf("failed to delete announcement %s: %w", announcementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
