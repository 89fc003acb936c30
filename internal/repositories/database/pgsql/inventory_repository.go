package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

const inventoryColumns = `item_id, name, description, location, quantity, created_at, created_by, last_updated_at, last_updated_by`

// PgxInventoryRepository persists inventory items in PostgreSQL.
type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{pool: pool}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ItemID,
		&item.Name,
		&item.Description,
		&item.Location,
		&item.Quantity,
		&item.CreatedAt,
		&item.CreatedBy,
		&item.LastUpdatedAt,
		&item.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `INSERT INTO inventory_items (` + inventoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.Description,
		item.Location,
		item.Quantity,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: item %q already exists", apperrors.ErrDuplicate, item.Name)
		}
		return fmt.Errorf("failed to save inventory item %s: %w", item.ItemID, err)
	}
	return nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1;`
	item, err := scanInventoryItem(r.pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}
	return item, nil
}

func (r *PgxInventoryRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}
	return items, nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, location = $4, quantity = $5, last_updated_at = $6, last_updated_by = $7
		WHERE item_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.Description,
		item.Location,
		item.Quantity,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23514 is the CHECK constraint keeping quantity non-negative.
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: quantity cannot go negative", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update inventory item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustItemQuantity moves the count by delta inside the database, so two
// concurrent adjustments serialize on the row instead of overwriting each
// other. The CHECK constraint keeps the result non-negative.
func (r *PgxInventoryRepository) AdjustItemQuantity(ctx context.Context, itemID string, delta int, updatedBy string, updatedAt time.Time) (*domain.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity + $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1
		RETURNING ` + inventoryColumns + `;`
	item, err := scanInventoryItem(r.pool.QueryRow(ctx, query, itemID, delta, updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, fmt.Errorf("%w: quantity cannot go negative", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to adjust inventory item %s: %w", itemID, err)
	}
	return item, nil
}

func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
