package repository

import (
	"context"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// Security defines the interface for securities persistence
type Security interface {
	CreateSecurity(ctx context.Context, security domain.Security) (*domain.Security, error)
	UpdateSecurityPrice(ctx context.Context, id int64, price int64) (*domain.Security, error)
	DeleteSecurity(ctx context.Context, id int64) (*domain.Security, error)
	// ListSecurities returns every security ordered by id
	ListSecurities(ctx context.Context) ([]domain.Security, error)
}
