package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// getBalance reads a user's balance row, optionally locking it for the current transaction
func getBalance(ctx context.Context, q querier, userID int64, forUpdate bool) (*domain.Balance, error) {
	query := `SELECT user_id, balance FROM balances WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var balance domain.Balance
	err := q.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, wrapDBError("failed to get balance", err)
	}
	return &balance, nil
}

// listSecurities returns the full catalog ordered by insertion
func listSecurities(ctx context.Context, q querier) ([]domain.Security, error) {
	rows, err := q.Query(ctx, `SELECT id, code, name, price FROM securities ORDER BY id`)
	if err != nil {
		return nil, wrapDBError("failed to list securities", err)
	}
	defer rows.Close()

	securities := []domain.Security{}
	for rows.Next() {
		var s domain.Security
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Price); err != nil {
			return nil, wrapDBError("failed to scan security", err)
		}
		securities = append(securities, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("failed to iterate securities", err)
	}
	return securities, nil
}

// wrapDBError tags a driver error with domain.ErrDatabaseError while keeping the cause
func wrapDBError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, msg, err)
}
