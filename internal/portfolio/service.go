// Package portfolio builds and stores security allocations for a user's balance.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/osse101/StockDesk_Go/internal/allocator"
	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/repository"
)

// Defaults for Config
const (
	DefaultMinSecurities = 10
	DefaultMaxCapacity   = 10_000_000
)

// Config bounds what an allocation request may ask for
type Config struct {
	// MinSecurities is the smallest catalog an allocation may run against
	MinSecurities int
	// MaxCapacity caps the budget handed to the allocator, whose memory grows with it
	MaxCapacity int
}

// DefaultConfig returns the production portfolio configuration
func DefaultConfig() Config {
	return Config{MinSecurities: DefaultMinSecurities, MaxCapacity: DefaultMaxCapacity}
}

// Service defines the interface for portfolio operations
type Service interface {
	Create(ctx context.Context, user *domain.User, riskLevel string) (*domain.Portfolio, error)
	List(ctx context.Context, user *domain.User) ([]domain.Portfolio, error)
}

type service struct {
	repo repository.Portfolio
	bus  event.Bus
	cfg  Config
	now  func() time.Time
}

// NewService creates a new portfolio service
func NewService(repo repository.Portfolio, bus event.Bus, cfg Config) Service {
	if bus == nil {
		bus = event.NopBus{}
	}
	if cfg.MinSecurities < 0 {
		cfg.MinSecurities = DefaultMinSecurities
	}
	if cfg.MaxCapacity <= 0 {
		cfg.MaxCapacity = DefaultMaxCapacity
	}
	return &service{repo: repo, bus: bus, cfg: cfg, now: time.Now}
}

// parseRiskLevel folds case before matching type1 or type2
func parseRiskLevel(raw string) (allocator.RiskLevel, error) {
	level, err := allocator.ParseRiskLevel(cases.Fold().String(strings.TrimSpace(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRiskLevel, raw)
	}
	return level, nil
}

// catalogFromSecurities keys the catalog by security code, keeping the repository order
func catalogFromSecurities(securities []domain.Security) allocator.Catalog {
	catalog := make(allocator.Catalog, 0, len(securities))
	for _, s := range securities {
		catalog = append(catalog, allocator.Item{Name: s.Code, Price: int(s.Price)})
	}
	return catalog
}

func (s *service) Create(ctx context.Context, user *domain.User, riskLevel string) (*domain.Portfolio, error) {
	log := logger.FromContext(ctx)

	level, err := parseRiskLevel(riskLevel)
	if err != nil {
		return nil, err
	}

	securities, err := s.repo.ListSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	if len(securities) < s.cfg.MinSecurities {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrNotEnoughSecurities, len(securities), s.cfg.MinSecurities)
	}

	balance, err := s.repo.GetBalance(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance.Balance > math.MaxInt {
		return nil, fmt.Errorf("%w: %d", domain.ErrCapacityTooLarge, balance.Balance)
	}

	capacity, err := level.Capacity(int(balance.Balance))
	if err != nil {
		return nil, fmt.Errorf("failed to compute capacity: %w", err)
	}
	if capacity > s.cfg.MaxCapacity {
		return nil, fmt.Errorf("%w: %d exceeds %d", domain.ErrCapacityTooLarge, capacity, s.cfg.MaxCapacity)
	}

	catalog := catalogFromSecurities(securities)
	start := s.now()
	selected, err := allocator.Allocate(capacity, catalog)
	elapsed := s.now().Sub(start)
	if err != nil {
		if errors.Is(err, allocator.ErrInvalidPrice) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPrice, err)
		}
		return nil, fmt.Errorf("failed to allocate: %w", err)
	}

	portfolio, err := s.repo.CreatePortfolio(ctx, user.ID, string(level), domain.JoinPortfolio(selected))
	if err != nil {
		return nil, fmt.Errorf("failed to save portfolio: %w", err)
	}

	allocated := catalog.Total(selected)
	evt := event.NewPortfolioAllocatedEvent(event.PortfolioAllocatedPayloadV1{
		UserID:          user.ID,
		RiskLevel:       string(level),
		Capacity:        int64(capacity),
		Allocated:       int64(allocated),
		SelectedCount:   len(selected),
		CatalogSize:     len(catalog),
		DurationSeconds: elapsed.Seconds(),
	})
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Warn("Failed to publish event", "type", event.PortfolioAllocated, "error", err)
	}

	log.Info("Portfolio allocated",
		"username", user.Username,
		"risk_level", level,
		"capacity", capacity,
		"allocated", allocated,
		"selected", len(selected),
		"duration", elapsed)

	return portfolio, nil
}

func (s *service) List(ctx context.Context, user *domain.User) ([]domain.Portfolio, error) {
	portfolios, err := s.repo.ListPortfolios(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, nil
}
