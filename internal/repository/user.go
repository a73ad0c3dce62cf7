package repository

import (
	"context"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// User defines the interface for user, balance bootstrap, and session history persistence
type User interface {
	// CreateUserWithBalance inserts the user and an empty balance row in one transaction.
	// Returns domain.ErrUsernameTaken if the username is already registered.
	CreateUserWithBalance(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetBalance(ctx context.Context, userID int64) (*domain.Balance, error)

	RecordHistory(ctx context.Context, username string, event domain.HistoryEvent) error
	GetHistory(ctx context.Context, username string, limit int) ([]domain.UserHistory, error)
}
