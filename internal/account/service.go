package account

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/repository"
)

// DefaultTransactionLimit caps the transactions returned by ListTransactions
const DefaultTransactionLimit = 100

// BalanceView is a user's balance with its display form
type BalanceView struct {
	UserID    int64  `json:"user_id"`
	Balance   int64  `json:"balance"`
	Formatted string `json:"formatted"`
}

// Service defines the interface for balance and transaction operations
type Service interface {
	GetBalance(ctx context.Context, user *domain.User) (*BalanceView, error)
	// CreateTransaction applies a deposit or withdraw to the user's balance.
	// txType is matched case-insensitively.
	CreateTransaction(ctx context.Context, user *domain.User, amount int64, txType string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, user *domain.User, limit int) ([]domain.Transaction, error)
}

type service struct {
	repo      repository.Account
	bus       event.Bus
	formatter formatter
}

// NewService creates a new account service. currency is an ISO 4217 code.
func NewService(repo repository.Account, bus event.Bus, currency string) Service {
	if bus == nil {
		bus = event.NopBus{}
	}
	return &service{
		repo:      repo,
		bus:       bus,
		formatter: newFormatter(currency),
	}
}

// parseTransactionType normalizes user input to a transaction type.
// Casers hold state, so each call gets its own.
func parseTransactionType(raw string) (domain.TransactionType, error) {
	t := domain.TransactionType(cases.Fold().String(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, raw)
	}
	return t, nil
}

func (s *service) GetBalance(ctx context.Context, user *domain.User) (*BalanceView, error) {
	balance, err := s.repo.GetBalance(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrBalanceNotFound) {
			return nil, fmt.Errorf("failed to get balance: %w", err)
		}
		// Users without a balance row simply have nothing yet
		balance = &domain.Balance{UserID: user.ID}
	}

	return &BalanceView{
		UserID:    balance.UserID,
		Balance:   balance.Balance,
		Formatted: s.formatter.Format(balance.Balance),
	}, nil
}

func (s *service) CreateTransaction(ctx context.Context, user *domain.User, amount int64, txType string) (*domain.Transaction, error) {
	log := logger.FromContext(ctx)

	transactionType, err := parseTransactionType(txType)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.GetBalanceForUpdate(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock balance: %w", err)
	}

	newBalance, err := applyTransaction(balance.Balance, amount, transactionType)
	if err != nil {
		log.Warn("Transaction rejected",
			"username", user.Username,
			"type", transactionType,
			"amount", amount,
			"balance", balance.Balance)
		return nil, err
	}

	if err := tx.UpdateBalance(ctx, user.ID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	record, err := tx.InsertTransaction(ctx, user.Username, amount, transactionType)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := s.bus.Publish(ctx, event.NewTransactionEvent(user.Username, amount, string(transactionType), newBalance)); err != nil {
		log.Warn("Failed to publish event", "type", event.TransactionCreated, "error", err)
	}
	log.Info("Transaction created",
		"username", user.Username,
		"type", transactionType,
		"amount", amount,
		"balance", newBalance)

	return record, nil
}

// applyTransaction returns the balance after moving amount in the given direction
func applyTransaction(balance, amount int64, txType domain.TransactionType) (int64, error) {
	switch txType {
	case domain.TransactionDeposit:
		if balance > math.MaxInt64-amount {
			return 0, fmt.Errorf("%w: deposit overflows balance", domain.ErrInvalidAmount)
		}
		return balance + amount, nil
	case domain.TransactionWithdraw:
		if amount > balance {
			return 0, domain.ErrInsufficientFunds
		}
		return balance - amount, nil
	default:
		return 0, domain.ErrInvalidTransactionType
	}
}

func (s *service) ListTransactions(ctx context.Context, user *domain.User, limit int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > DefaultTransactionLimit {
		limit = DefaultTransactionLimit
	}
	transactions, err := s.repo.ListTransactions(ctx, user.Username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
