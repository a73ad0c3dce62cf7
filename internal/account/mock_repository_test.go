package account

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/repository"
)

// MockRepository is a testify mock of repository.Account
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockRepository) ListTransactions(ctx context.Context, username string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountTx), args.Error(1)
}

// MockTx is a testify mock of repository.AccountTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetBalanceForUpdate(ctx context.Context, userID int64) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockTx) UpdateBalance(ctx context.Context, userID int64, balance int64) error {
	return m.Called(ctx, userID, balance).Error(0)
}

func (m *MockTx) InsertTransaction(ctx context.Context, username string, amount int64, txType domain.TransactionType) (*domain.Transaction, error) {
	args := m.Called(ctx, username, amount, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
