// Package securities manages the catalog of tradable securities.
package securities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/repository"
)

// MaxFieldLength matches the securities.code and securities.name columns
const MaxFieldLength = 50

// Service defines the interface for catalog maintenance
type Service interface {
	Create(ctx context.Context, code, name string, price int64) (*domain.Security, error)
	UpdatePrice(ctx context.Context, id int64, price int64) (*domain.Security, error)
	// Delete removes a security and returns the removed row
	Delete(ctx context.Context, id int64) (*domain.Security, error)
	List(ctx context.Context) ([]domain.Security, error)
}

type service struct {
	repo repository.Security
	bus  event.Bus
}

// NewService creates a new securities service
func NewService(repo repository.Security, bus event.Bus) Service {
	if bus == nil {
		bus = event.NopBus{}
	}
	return &service{repo: repo, bus: bus}
}

func validField(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxFieldLength
}

func (s *service) Create(ctx context.Context, code, name string, price int64) (*domain.Security, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if !validField(code) || !validField(name) {
		return nil, domain.ErrInvalidSecurity
	}
	if price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	created, err := s.repo.CreateSecurity(ctx, domain.Security{Code: code, Name: name, Price: price})
	if err != nil {
		if errors.Is(err, domain.ErrSecurityExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSecurityExists, code)
		}
		return nil, fmt.Errorf("failed to create security: %w", err)
	}

	s.publish(ctx, created.Code, event.SecurityActionCreated)
	logger.FromContext(ctx).Info("Security created", "code", created.Code, "price", created.Price)
	return created, nil
}

func (s *service) UpdatePrice(ctx context.Context, id int64, price int64) (*domain.Security, error) {
	if price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	updated, err := s.repo.UpdateSecurityPrice(ctx, id, price)
	if err != nil {
		if errors.Is(err, domain.ErrSecurityNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update security: %w", err)
	}

	s.publish(ctx, updated.Code, event.SecurityActionUpdated)
	logger.FromContext(ctx).Info("Security price updated", "code", updated.Code, "price", updated.Price)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*domain.Security, error) {
	deleted, err := s.repo.DeleteSecurity(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSecurityNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete security: %w", err)
	}

	s.publish(ctx, deleted.Code, event.SecurityActionDeleted)
	logger.FromContext(ctx).Info("Security deleted", "code", deleted.Code)
	return deleted, nil
}

func (s *service) List(ctx context.Context) ([]domain.Security, error) {
	securities, err := s.repo.ListSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	return securities, nil
}

func (s *service) publish(ctx context.Context, code, action string) {
	if err := s.bus.Publish(ctx, event.NewSecurityChangedEvent(code, action)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "type", event.SecurityListChanged, "error", err)
	}
}
