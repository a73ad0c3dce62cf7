package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Account and portfolio event types
const (
	UserRegistered      Type = "user.registered"
	UserLoggedIn        Type = "user.logged_in"
	UserLoggedOut       Type = "user.logged_out"
	TransactionCreated  Type = "account.transaction_created"
	PortfolioAllocated  Type = "portfolio.allocated"
	SecurityListChanged Type = "securities.changed"
)

// Typed event payloads for type safety

// UserPayloadV1 is the typed payload for registration and session events
type UserPayloadV1 struct {
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// TransactionPayloadV1 is the typed payload for deposit and withdraw events
type TransactionPayloadV1 struct {
	Username        string `json:"username"`
	Amount          int64  `json:"amount"`
	TransactionType string `json:"transaction_type"`
	Balance         int64  `json:"balance"`
	Timestamp       int64  `json:"timestamp"`
}

// PortfolioAllocatedPayloadV1 is the typed payload for allocation events
type PortfolioAllocatedPayloadV1 struct {
	UserID          int64   `json:"user_id"`
	RiskLevel       string  `json:"risk_level"`
	Capacity        int64   `json:"capacity"`
	Allocated       int64   `json:"allocated"`
	SelectedCount   int     `json:"selected_count"`
	CatalogSize     int     `json:"catalog_size"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       int64   `json:"timestamp"`
}

// SecurityChangedPayloadV1 is the typed payload for catalog changes
type SecurityChangedPayloadV1 struct {
	Code      string `json:"code"`
	Action    string `json:"action"` // "created", "updated" or "deleted"
	Timestamp int64  `json:"timestamp"`
}

// Security change actions
const (
	SecurityActionCreated = "created"
	SecurityActionUpdated = "updated"
	SecurityActionDeleted = "deleted"
)

// Type-safe event constructors

// NewUserEvent creates a registration or session event for username
func NewUserEvent(eventType Type, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: UserPayloadV1{
			Username:  username,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewTransactionEvent creates a transaction event carrying the resulting balance
func NewTransactionEvent(username string, amount int64, txType string, balance int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TransactionCreated,
		Payload: TransactionPayloadV1{
			Username:        username,
			Amount:          amount,
			TransactionType: txType,
			Balance:         balance,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewPortfolioAllocatedEvent creates an allocation event
func NewPortfolioAllocatedEvent(payload PortfolioAllocatedPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    PortfolioAllocated,
		Payload: payload,
		Metadata: map[string]interface{}{
			"risk_level": payload.RiskLevel,
		},
	}
}

// NewSecurityChangedEvent creates a catalog change event
func NewSecurityChangedEvent(code, action string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SecurityListChanged,
		Payload: SecurityChangedPayloadV1{
			Code:      code,
			Action:    action,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus discards every event. Services use it when no bus is configured.
type NopBus struct{}

// Publish does nothing
func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe does nothing
func (NopBus) Subscribe(Type, Handler) {}
