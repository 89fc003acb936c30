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

const memberColumns = `member_id, name, email, phone, birth_date, ministry, is_active, created_at, created_by, last_updated_at, last_updated_by`

// PgxMemberRepository persists the member directory in PostgreSQL.
type PgxMemberRepository struct {
	pool *pgxpool.Pool
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{pool: pool}
}

var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.MemberID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.BirthDate,
		&m.Ministry,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `INSERT INTO members (` + memberColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.pool.Exec(ctx, query,
		member.MemberID,
		member.Name,
		member.Email,
		member.Phone,
		member.BirthDate,
		member.Ministry,
		member.IsActive,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: member with this email already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save member %s: %w", member.MemberID, err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	m, err := scanMember(r.pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	return m, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members
		SET name = $2, email = $3, phone = $4, birth_date = $5, ministry = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE member_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		member.MemberID,
		member.Name,
		member.Email,
		member.Phone,
		member.BirthDate,
		member.Ministry,
		member.IsActive,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update member %s: %w", member.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: member %s is referenced by tasks or schedules", apperrors.ErrConflict, memberID)
		}
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
