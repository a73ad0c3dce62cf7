package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StockDesk_Go/internal/account"
	"github.com/osse101/StockDesk_Go/internal/config"
	"github.com/osse101/StockDesk_Go/internal/database/postgres"
	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/portfolio"
	"github.com/osse101/StockDesk_Go/internal/repository"
	"github.com/osse101/StockDesk_Go/internal/securities"
	"github.com/osse101/StockDesk_Go/internal/server"
	"github.com/osse101/StockDesk_Go/internal/user"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User      repository.User
	Account   repository.Account
	Security  repository.Security
	Portfolio repository.Portfolio
}

// InitializeRepositories creates the Postgres-backed repositories.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Account:   postgres.NewAccountRepository(dbPool),
		Security:  postgres.NewSecurityRepository(dbPool),
		Portfolio: postgres.NewPortfolioRepository(dbPool),
	}
}

// InitializeServices builds the domain services from configuration.
func InitializeServices(cfg *config.Config, dbPool *pgxpool.Pool, repos *Repositories, bus event.Bus) server.Services {
	userCfg := user.DefaultConfig()
	userCfg.Cache = user.CacheConfig{Size: cfg.TokenCacheSize, TTL: cfg.TokenCacheTTL}

	return server.Services{
		DB:         dbPool,
		Users:      user.NewService(repos.User, bus, userCfg),
		Accounts:   account.NewService(repos.Account, bus, cfg.Currency),
		Securities: securities.NewService(repos.Security, bus),
		Portfolios: portfolio.NewService(repos.Portfolio, bus, portfolio.Config{
			MinSecurities: cfg.MinSecurities,
			MaxCapacity:   cfg.MaxAllocationCapacity,
		}),
	}
}
