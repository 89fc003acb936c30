package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

const transactionColumns = `transaction_id, txn_type, value, txn_date, description, category_id, account_id, destination_account_id, project_id, payment_method, status, created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository persists ledger transactions in PostgreSQL. All
// balance-affecting writes happen inside one database transaction: the
// affected account rows are locked first, then the transaction row is
// written, then each delta is applied as an in-database increment.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn                  domain.Transaction
		categoryID           sql.NullString
		destinationAccountID sql.NullString
		projectID            sql.NullString
	)
	err := row.Scan(
		&txn.TransactionID,
		&txn.Type,
		&txn.Value,
		&txn.Date,
		&txn.Description,
		&categoryID,
		&txn.AccountID,
		&destinationAccountID,
		&projectID,
		&txn.PaymentMethod,
		&txn.Status,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	txn.CategoryID = categoryID.String
	txn.DestinationAccountID = destinationAccountID.String
	txn.ProjectID = projectID.String
	return &txn, nil
}

// lockAccounts takes FOR UPDATE locks on every account a delta touches,
// in sorted order so concurrent writers cannot deadlock each other.
func lockAccounts(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal) error {
	if len(balanceChanges) == 0 {
		return nil
	}
	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	rows, err := tx.Query(ctx, `SELECT account_id FROM financial_accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to lock account rows: %w", err)
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan locked account row: %w", err)
		}
		locked++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating locked account rows: %w", err)
	}
	if locked != len(accountIDs) {
		return fmt.Errorf("%w: one or more accounts do not exist", apperrors.ErrNotFound)
	}
	return nil
}

// applyBalanceChanges increments each locked account's balance by its delta.
// The increment happens in the database, never as read-modify-write in Go.
func applyBalanceChanges(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE financial_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	for accountID, delta := range balanceChanges {
		tag, err := tx.Exec(ctx, query, accountID, delta, updatedAt, updatedBy)
		if err != nil {
			return fmt.Errorf("failed to apply balance delta to account %s: %w", accountID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
	}
	return nil
}

// SaveTransaction inserts the transaction row and applies its balance deltas
// atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}

	query := `INSERT INTO financial_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err = tx.Exec(ctx, query,
		txn.TransactionID,
		txn.Type,
		txn.Value,
		txn.Date,
		txn.Description,
		nullIfEmpty(txn.CategoryID),
		txn.AccountID,
		nullIfEmpty(txn.DestinationAccountID),
		nullIfEmpty(txn.ProjectID),
		txn.PaymentMethod,
		txn.Status,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
			case "23503":
				return fmt.Errorf("%w: transaction references a missing account, category or project", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}

	if err := applyBalanceChanges(ctx, tx, balanceChanges, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE 1=1`
	args := make([]any, 0, 8)

	addArg := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if filter.AccountID != "" {
		addArg(" AND (account_id = $%[1]d OR destination_account_id = $%[1]d)", filter.AccountID)
	}
	if filter.ProjectID != "" {
		addArg(" AND project_id = $%d", filter.ProjectID)
	}
	if filter.Status != "" {
		addArg(" AND status = $%d", filter.Status)
	}
	if filter.Type != "" {
		addArg(" AND txn_type = $%d", filter.Type)
	}
	if filter.DateFrom != nil {
		addArg(" AND txn_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addArg(" AND txn_date <= $%d", *filter.DateTo)
	}

	query += " ORDER BY txn_date DESC, created_at DESC"
	addArg(" LIMIT $%d", filter.Limit)
	addArg(" OFFSET $%d", filter.Offset)
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// UpdateTransaction overwrites the editable fields of a transaction. It never
// touches account balances; balance moves only with save, status change and
// delete.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE financial_transactions
		SET txn_type = $2, value = $3, txn_date = $4, description = $5, category_id = $6,
		    account_id = $7, destination_account_id = $8, project_id = $9, payment_method = $10,
		    status = $11, last_updated_at = $12, last_updated_by = $13
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Type,
		txn.Value,
		txn.Date,
		txn.Description,
		nullIfEmpty(txn.CategoryID),
		txn.AccountID,
		nullIfEmpty(txn.DestinationAccountID),
		nullIfEmpty(txn.ProjectID),
		txn.PaymentMethod,
		txn.Status,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: transaction references a missing account, category or project", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionStatus moves the transaction to the given status and
// applies the balance deltas in the same database transaction. This is the
// approval path: PENDING_APPROVAL -> PAID applies the deltas, -> CANCELLED
// passes an empty map.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}

	query := `
		UPDATE financial_transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query, transactionID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceChanges(ctx, tx, balanceChanges, updatedBy, updatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the row and applies balanceChanges, which for a
// paid transaction is the exact reversal of its original deltas.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, deletedBy string, deletedAt time.Time, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM financial_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceChanges(ctx, tx, balanceChanges, deletedBy, deletedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
