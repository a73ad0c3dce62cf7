package portfolio

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/event"
)

// MockRepository is a testify mock of repository.Portfolio
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListSecurities(ctx context.Context) ([]domain.Security, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Security), args.Error(1)
}

func (m *MockRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockRepository) CreatePortfolio(ctx context.Context, userID int64, riskLevel, portfolio string) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID, riskLevel, portfolio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockRepository) ListPortfolios(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

var alice = &domain.User{ID: 1, Username: "alice"}

// abc is the A:10 B:20 C:30 catalog in insertion order
var abc = []domain.Security{
	{ID: 1, Code: "A", Name: "Alpha", Price: 10},
	{ID: 2, Code: "B", Name: "Beta", Price: 20},
	{ID: 3, Code: "C", Name: "Gamma", Price: 30},
}

// savesPortfolio expects CreatePortfolio and echoes the stored row back
func savesPortfolio(repo *MockRepository, riskLevel, portfolio string) {
	repo.On("CreatePortfolio", mock.Anything, alice.ID, riskLevel, portfolio).
		Return(&domain.Portfolio{ID: 1, UserID: alice.ID, RiskLevel: riskLevel, Portfolio: portfolio}, nil).Once()
}

func TestCreate_Allocations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		riskLevel string
		stored    string
		balance   int64
		want      string
	}{
		{"full budget fills exactly", "type1", "type1", 50, "B,C"},
		{"full budget best under", "type1", "type1", 25, "B"},
		{"half budget matches full of half", "type2", "type2", 100, "B,C"},
		{"half budget rounds down", "type2", "type2", 61, "A,B"},
		{"nothing fits", "type1", "type1", 5, ""},
		{"zero balance", "type2", "type2", 0, ""},
		{"risk level is case-insensitive", "TYPE1", "type1", 30, "A,B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, nil, Config{MinSecurities: 3, MaxCapacity: 1000})

			repo.On("ListSecurities", ctx).Return(abc, nil)
			repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: tt.balance}, nil)
			savesPortfolio(repo, tt.stored, tt.want)

			portfolio, err := svc.Create(ctx, alice, tt.riskLevel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, portfolio.Portfolio)
			repo.AssertExpectations(t)
		})
	}
}

func TestCreate_PublishesAllocation(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	var payloads []event.PortfolioAllocatedPayloadV1
	bus.Subscribe(event.PortfolioAllocated, func(ctx context.Context, evt event.Event) error {
		payloads = append(payloads, evt.Payload.(event.PortfolioAllocatedPayloadV1))
		return nil
	})
	svc := NewService(repo, bus, Config{MinSecurities: 3, MaxCapacity: 1000})

	repo.On("ListSecurities", ctx).Return(abc, nil)
	repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: 100}, nil)
	savesPortfolio(repo, "type2", "B,C")

	_, err := svc.Create(ctx, alice, "type2")
	require.NoError(t, err)

	require.Len(t, payloads, 1)
	assert.Equal(t, int64(50), payloads[0].Capacity)
	assert.Equal(t, int64(50), payloads[0].Allocated)
	assert.Equal(t, 2, payloads[0].SelectedCount)
	assert.Equal(t, 3, payloads[0].CatalogSize)
	assert.Equal(t, "type2", payloads[0].RiskLevel)
}

func TestCreate_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidRiskLevel", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, DefaultConfig())

		_, err := svc.Create(ctx, alice, "type3")
		assert.ErrorIs(t, err, domain.ErrInvalidRiskLevel)
		repo.AssertNotCalled(t, "ListSecurities", mock.Anything)
	})

	t.Run("NotEnoughSecurities", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, DefaultConfig())
		repo.On("ListSecurities", ctx).Return(abc, nil)

		_, err := svc.Create(ctx, alice, "type1")
		assert.ErrorIs(t, err, domain.ErrNotEnoughSecurities)
		repo.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
	})

	t.Run("ExactlyMinimumAllowed", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, DefaultConfig())

		catalog := make([]domain.Security, DefaultMinSecurities)
		for i := range catalog {
			catalog[i] = domain.Security{ID: int64(i + 1), Code: fmt.Sprintf("S%02d", i), Price: int64(i + 1)}
		}
		repo.On("ListSecurities", ctx).Return(catalog, nil)
		repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: 1}, nil)
		savesPortfolio(repo, "type1", "S00")

		portfolio, err := svc.Create(ctx, alice, "type1")
		require.NoError(t, err)
		assert.Equal(t, []string{"S00"}, portfolio.Codes())
	})

	t.Run("BalanceNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, Config{MinSecurities: 3, MaxCapacity: 1000})
		repo.On("ListSecurities", ctx).Return(abc, nil)
		repo.On("GetBalance", ctx, alice.ID).Return(nil, domain.ErrBalanceNotFound)

		_, err := svc.Create(ctx, alice, "type1")
		assert.ErrorIs(t, err, domain.ErrBalanceNotFound)
	})

	t.Run("CapacityTooLarge", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, Config{MinSecurities: 3, MaxCapacity: 100})
		repo.On("ListSecurities", ctx).Return(abc, nil)
		repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: 101}, nil)

		_, err := svc.Create(ctx, alice, "type1")
		assert.ErrorIs(t, err, domain.ErrCapacityTooLarge)
		repo.AssertNotCalled(t, "CreatePortfolio", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("HalfBudgetUnderLimit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, Config{MinSecurities: 3, MaxCapacity: 100})
		repo.On("ListSecurities", ctx).Return(abc, nil)
		repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: 200}, nil)
		savesPortfolio(repo, "type2", "A,B,C")

		_, err := svc.Create(ctx, alice, "type2")
		assert.NoError(t, err)
	})

	t.Run("NegativePriceInCatalog", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, Config{MinSecurities: 1, MaxCapacity: 100})
		repo.On("ListSecurities", ctx).Return([]domain.Security{{ID: 1, Code: "BAD", Price: -1}}, nil)
		repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: 10}, nil)

		_, err := svc.Create(ctx, alice, "type1")
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("SaveFailure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil, Config{MinSecurities: 3, MaxCapacity: 1000})
		repo.On("ListSecurities", ctx).Return(abc, nil)
		repo.On("GetBalance", ctx, alice.ID).Return(&domain.Balance{UserID: alice.ID, Balance: 50}, nil)
		repo.On("CreatePortfolio", ctx, alice.ID, "type1", "B,C").Return(nil, domain.ErrDatabaseError)

		_, err := svc.Create(ctx, alice, "type1")
		assert.ErrorIs(t, err, domain.ErrDatabaseError)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, nil, DefaultConfig())
	want := []domain.Portfolio{{ID: 2, UserID: 1, RiskLevel: "type1", Portfolio: "A"}}
	repo.On("ListPortfolios", ctx, alice.ID).Return(want, nil)

	got, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(new(MockRepository), nil, Config{MinSecurities: -1}).(*service)
	assert.Equal(t, DefaultMinSecurities, svc.cfg.MinSecurities)
	assert.Equal(t, DefaultMaxCapacity, svc.cfg.MaxCapacity)
}
