package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// PortfolioRepository implements the portfolio repository for PostgreSQL
type PortfolioRepository struct {
	db *pgxpool.Pool
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// ListSecurities returns the catalog snapshot used for allocation, ordered by id
func (r *PortfolioRepository) ListSecurities(ctx context.Context) ([]domain.Security, error) {
	return listSecurities(ctx, r.db)
}

// GetBalance retrieves the balance row for a user
func (r *PortfolioRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	return getBalance(ctx, r.db, userID, false)
}

// CreatePortfolio stores an allocation result
func (r *PortfolioRepository) CreatePortfolio(ctx context.Context, userID int64, riskLevel, portfolio string) (*domain.Portfolio, error) {
	p := &domain.Portfolio{
		UserID:    userID,
		RiskLevel: riskLevel,
		Portfolio: portfolio,
	}
	query := `
		INSERT INTO portfolios (user_id, risk_level, portfolio)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, userID, riskLevel, portfolio).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, wrapDBError("failed to insert portfolio", err)
	}
	return p, nil
}

// ListPortfolios returns the user's portfolios, newest first
func (r *PortfolioRepository) ListPortfolios(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	query := `
		SELECT id, user_id, risk_level, portfolio, created_at
		FROM portfolios
		WHERE user_id = $1
		ORDER BY id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapDBError("failed to list portfolios", err)
	}
	defer rows.Close()

	portfolios := []domain.Portfolio{}
	for rows.Next() {
		var p domain.Portfolio
		if err := rows.Scan(&p.ID, &p.UserID, &p.RiskLevel, &p.Portfolio, &p.CreatedAt); err != nil {
			return nil, wrapDBError("failed to scan portfolio", err)
		}
		portfolios = append(portfolios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("failed to iterate portfolios", err)
	}
	return portfolios, nil
}
