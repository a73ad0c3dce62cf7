package repository

import (
	"context"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// Portfolio defines the interface for portfolio persistence
type Portfolio interface {
	ListSecurities(ctx context.Context) ([]domain.Security, error)
	GetBalance(ctx context.Context, userID int64) (*domain.Balance, error)
	CreatePortfolio(ctx context.Context, userID int64, riskLevel, portfolio string) (*domain.Portfolio, error)
	ListPortfolios(ctx context.Context, userID int64) ([]domain.Portfolio, error)
}
