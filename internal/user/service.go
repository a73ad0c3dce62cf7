package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/repository"
)

// Service defines the interface for registration, sessions, and token resolution
type Service interface {
	Register(ctx context.Context, username, password string) (*domain.UserProfile, error)
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	Logout(ctx context.Context, username string) error
	// Authenticate resolves a bearer token to its user.
	// Unknown tokens return domain.ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	GetHistory(ctx context.Context, username string, limit int) ([]domain.UserHistory, error)
	GetCacheStats() CacheStats
}

// Config holds the tunables for the user service
type Config struct {
	Cache      CacheConfig
	BcryptCost int
}

// DefaultConfig returns the production user service configuration
func DefaultConfig() Config {
	return Config{Cache: DefaultCacheConfig(), BcryptCost: DefaultBcryptCost}
}

type service struct {
	repo       repository.User
	bus        event.Bus
	cache      *tokenCache
	bcryptCost int
}

// NewService creates a new user service
func NewService(repo repository.User, bus event.Bus, cfg Config) Service {
	if bus == nil {
		bus = event.NopBus{}
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = DefaultBcryptCost
	}
	return &service{
		repo:       repo,
		bus:        bus,
		cache:      newTokenCache(cfg.Cache),
		bcryptCost: cfg.BcryptCost,
	}
}

// validateCredentials checks the limits the schema and bcrypt impose
func validateCredentials(username, password string) error {
	if n := utf8.RuneCountInString(username); n == 0 || n > MaxUsernameLength || strings.TrimSpace(username) == "" {
		return domain.ErrInvalidUsername
	}
	if password == "" {
		return domain.ErrPasswordRequired
	}
	if len(password) > MaxPasswordBytes {
		return domain.ErrPasswordTooLong
	}
	return nil
}

func (s *service) Register(ctx context.Context, username, password string) (*domain.UserProfile, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUserWithBalance(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Warn("Registration rejected", "username", username, "reason", "taken")
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	balance, err := s.repo.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	s.publish(ctx, event.NewUserEvent(event.UserRegistered, username))
	log.Info("User registered", "username", username, "user_id", user.ID)

	return &domain.UserProfile{
		ID:          user.ID,
		Username:    user.Username,
		BalanceInfo: []domain.Balance{*balance},
	}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login failed", "username", username)
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.RecordHistory(ctx, username, domain.HistoryEventLogin); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	// The access token is the username itself
	s.cache.Set(username, user)
	s.publish(ctx, event.NewUserEvent(event.UserLoggedIn, username))
	log.Info("User logged in", "username", username)

	return &domain.Token{AccessToken: username, TokenType: domain.TokenTypeBearer}, nil
}

func (s *service) Logout(ctx context.Context, username string) error {
	if _, err := s.repo.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.RecordHistory(ctx, username, domain.HistoryEventLogout); err != nil {
		return fmt.Errorf("failed to record logout: %w", err)
	}

	s.cache.Invalidate(username)
	s.publish(ctx, event.NewUserEvent(event.UserLoggedOut, username))
	logger.FromContext(ctx).Info("User logged out", "username", username)
	return nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	if user, ok := s.cache.Get(token); ok {
		return user, nil
	}

	user, err := s.repo.GetUserByUsername(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	s.cache.Set(token, user)
	return user, nil
}

func (s *service) GetHistory(ctx context.Context, username string, limit int) ([]domain.UserHistory, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	history, err := s.repo.GetHistory(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return history, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}

// publish sends an event and logs, rather than returns, delivery failures
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "type", evt.Type, "error", err)
	}
}
