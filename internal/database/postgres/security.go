package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// SecurityRepository implements the security repository for PostgreSQL
type SecurityRepository struct {
	db *pgxpool.Pool
}

// NewSecurityRepository creates a new SecurityRepository
func NewSecurityRepository(db *pgxpool.Pool) *SecurityRepository {
	return &SecurityRepository{db: db}
}

// CreateSecurity inserts a security. Duplicate codes return domain.ErrSecurityExists.
func (r *SecurityRepository) CreateSecurity(ctx context.Context, security domain.Security) (*domain.Security, error) {
	query := `
		INSERT INTO securities (code, name, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	created := security
	if err := r.db.QueryRow(ctx, query, security.Code, security.Name, security.Price).Scan(&created.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSecurityExists
		}
		return nil, wrapDBError("failed to insert security", err)
	}
	return &created, nil
}

// UpdateSecurityPrice sets a new price and returns the updated row
func (r *SecurityRepository) UpdateSecurityPrice(ctx context.Context, id int64, price int64) (*domain.Security, error) {
	query := `
		UPDATE securities SET price = $1
		WHERE id = $2
		RETURNING id, code, name, price
	`
	return r.scanOne(ctx, "failed to update security", query, price, id)
}

// DeleteSecurity removes a security and returns the deleted row
func (r *SecurityRepository) DeleteSecurity(ctx context.Context, id int64) (*domain.Security, error) {
	query := `
		DELETE FROM securities
		WHERE id = $1
		RETURNING id, code, name, price
	`
	return r.scanOne(ctx, "failed to delete security", query, id)
}

// ListSecurities returns every security ordered by id
func (r *SecurityRepository) ListSecurities(ctx context.Context) ([]domain.Security, error) {
	return listSecurities(ctx, r.db)
}

func (r *SecurityRepository) scanOne(ctx context.Context, msg, query string, args ...any) (*domain.Security, error) {
	var s domain.Security
	if err := r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Code, &s.Name, &s.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSecurityNotFound
		}
		return nil, wrapDBError(msg, err)
	}
	return &s, nil
}
