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

const categoryColumns = `category_id, name, direction, created_at, created_by, last_updated_at, last_updated_by`

// PgxCategoryRepository persists categories in PostgreSQL.
type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var cat domain.Category
	err := row.Scan(
		&cat.CategoryID,
		&cat.Name,
		&cat.Direction,
		&cat.CreatedAt,
		&cat.CreatedBy,
		&cat.LastUpdatedAt,
		&cat.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `INSERT INTO financial_categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Direction,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM financial_categories WHERE category_id = $1;`
	cat, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return cat, nil
}

// ListCategories retrieves categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM financial_categories ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// UpdateCategory overwrites the mutable fields of a category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE financial_categories
		SET name = $2, direction = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Direction,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Categories referenced by transactions
// are protected by a RESTRICT foreign key and surface as ErrConflict.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM financial_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: category %s is referenced by transactions", apperrors.ErrConflict, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
