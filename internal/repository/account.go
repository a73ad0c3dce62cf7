package repository

import (
	"context"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// Account defines the interface for balance and transaction persistence
type Account interface {
	GetBalance(ctx context.Context, userID int64) (*domain.Balance, error)
	ListTransactions(ctx context.Context, username string, limit int) ([]domain.Transaction, error)
	BeginTx(ctx context.Context) (AccountTx, error)
}

// AccountTx defines the interface for balance-changing transactions
type AccountTx interface {
	Tx
	// GetBalanceForUpdate locks the balance row until the transaction ends
	GetBalanceForUpdate(ctx context.Context, userID int64) (*domain.Balance, error)
	UpdateBalance(ctx context.Context, userID int64, balance int64) error
	InsertTransaction(ctx context.Context, username string, amount int64, txType domain.TransactionType) (*domain.Transaction, error)
}
