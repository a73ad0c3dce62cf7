package handler

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/StockDesk_Go/internal/account"
	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/middleware"
	"github.com/osse101/StockDesk_Go/internal/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password string) (*domain.UserProfile, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetHistory(ctx context.Context, username string, limit int) ([]domain.UserHistory, error) {
	args := m.Called(ctx, username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserHistory), args.Error(1)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	args := m.Called()
	return args.Get(0).(user.CacheStats)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetBalance(ctx context.Context, u *domain.User) (*account.BalanceView, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.BalanceView), args.Error(1)
}

func (m *MockAccountService) CreateTransaction(ctx context.Context, u *domain.User, amount int64, txType string) (*domain.Transaction, error) {
	args := m.Called(ctx, u, amount, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) ListTransactions(ctx context.Context, u *domain.User, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, u, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockSecuritiesService struct {
	mock.Mock
}

func (m *MockSecuritiesService) Create(ctx context.Context, code, name string, price int64) (*domain.Security, error) {
	args := m.Called(ctx, code, name, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Security), args.Error(1)
}

func (m *MockSecuritiesService) UpdatePrice(ctx context.Context, id int64, price int64) (*domain.Security, error) {
	args := m.Called(ctx, id, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Security), args.Error(1)
}

func (m *MockSecuritiesService) Delete(ctx context.Context, id int64) (*domain.Security, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Security), args.Error(1)
}

func (m *MockSecuritiesService) List(ctx context.Context) ([]domain.Security, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Security), args.Error(1)
}

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) Create(ctx context.Context, u *domain.User, riskLevel string) (*domain.Portfolio, error) {
	args := m.Called(ctx, u, riskLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioService) List(ctx context.Context, u *domain.User) ([]domain.Portfolio, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

var testUser = &domain.User{ID: 7, Username: "alice"}

// asUser attaches the authenticated user the bearer middleware would set
func asUser(r *http.Request, u *domain.User) *http.Request {
	return r.WithContext(middleware.WithUser(r.Context(), u))
}
