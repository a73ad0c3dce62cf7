package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// MockRepository is a testify mock of repository.User
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUserWithBalance(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockRepository) RecordHistory(ctx context.Context, username string, event domain.HistoryEvent) error {
	args := m.Called(ctx, username, event)
	return args.Error(0)
}

func (m *MockRepository) GetHistory(ctx context.Context, username string, limit int) ([]domain.UserHistory, error) {
	args := m.Called(ctx, username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserHistory), args.Error(1)
}
