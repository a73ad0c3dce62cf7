package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUserWithBalance inserts a user and its zero balance row atomically
func (r *UserRepository) CreateUserWithBalance(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	user := &domain.User{Username: username, PasswordHash: passwordHash}
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, query, username, passwordHash).Scan(&user.ID, &user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, wrapDBError("failed to insert user", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO balances (user_id, balance) VALUES ($1, 0)`, user.ID); err != nil {
		return nil, wrapDBError("failed to insert balance", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password, created_at
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapDBError("failed to get user", err)
	}
	return &user, nil
}

// GetBalance retrieves the balance row for a user
func (r *UserRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	return getBalance(ctx, r.db, userID, false)
}

// RecordHistory appends a session event for the user
func (r *UserRepository) RecordHistory(ctx context.Context, username string, event domain.HistoryEvent) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users_history (username, event) VALUES ($1, $2)`, username, string(event))
	if err != nil {
		return wrapDBError("failed to record history", err)
	}
	return nil
}

// GetHistory returns the most recent session events for the user, newest first
func (r *UserRepository) GetHistory(ctx context.Context, username string, limit int) ([]domain.UserHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := `
		SELECT id, time, username, event
		FROM users_history
		WHERE username = $1
		ORDER BY time DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, username, limit)
	if err != nil {
		return nil, wrapDBError("failed to get history", err)
	}
	defer rows.Close()

	history := []domain.UserHistory{}
	for rows.Next() {
		var h domain.UserHistory
		var event string
		if err := rows.Scan(&h.ID, &h.Time, &h.Username, &event); err != nil {
			return nil, wrapDBError("failed to scan history", err)
		}
		h.Event = domain.HistoryEvent(event)
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("failed to iterate history", err)
	}
	return history, nil
}
