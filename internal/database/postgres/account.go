package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/repository"
)

// AccountRepository implements the account repository for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetBalance retrieves the balance row for a user
func (r *AccountRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	return getBalance(ctx, r.db, userID, false)
}

// ListTransactions returns the user's most recent transactions, newest first
func (r *AccountRepository) ListTransactions(ctx context.Context, username string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	query := `
		SELECT id, time, username, amount, transaction_type
		FROM transactions
		WHERE username = $1
		ORDER BY time DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, username, limit)
	if err != nil {
		return nil, wrapDBError("failed to list transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		var txType string
		if err := rows.Scan(&t.ID, &t.Time, &t.Username, &t.Amount, &txType); err != nil {
			return nil, wrapDBError("failed to scan transaction", err)
		}
		t.TransactionType = domain.TransactionType(txType)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("failed to iterate transactions", err)
	}
	return transactions, nil
}

// BeginTx starts a transaction for a balance change
func (r *AccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &accountTx{tx: tx}, nil
}

type accountTx struct {
	tx pgx.Tx
}

func (t *accountTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *accountTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *accountTx) GetBalanceForUpdate(ctx context.Context, userID int64) (*domain.Balance, error) {
	return getBalance(ctx, t.tx, userID, true)
}

func (t *accountTx) UpdateBalance(ctx context.Context, userID int64, balance int64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE balances SET balance = $1 WHERE user_id = $2`, balance, userID)
	if err != nil {
		return wrapDBError("failed to update balance", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBalanceNotFound
	}
	return nil
}

func (t *accountTx) InsertTransaction(ctx context.Context, username string, amount int64, txType domain.TransactionType) (*domain.Transaction, error) {
	txn := &domain.Transaction{
		Username:        username,
		Amount:          amount,
		TransactionType: txType,
	}
	query := `
		INSERT INTO transactions (username, amount, transaction_type)
		VALUES ($1, $2, $3)
		RETURNING id, time
	`
	if err := t.tx.QueryRow(ctx, query, username, amount, string(txType)).Scan(&txn.ID, &txn.Time); err != nil {
		return nil, wrapDBError("failed to insert transaction", err)
	}
	return txn, nil
}
