package metrics

import (
	"context"

	"github.com/osse101/StockDesk_Go/internal/event"
	"github.com/osse101/StockDesk_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.UserRegistered,
		event.UserLoggedIn,
		event.UserLoggedOut,
		event.TransactionCreated,
		event.PortfolioAllocated,
		event.SecurityListChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.UserRegistered:
		UsersRegistered.Inc()

	case event.UserLoggedIn, event.UserLoggedOut:
		Sessions.WithLabelValues(string(evt.Type)).Inc()

	case event.TransactionCreated:
		var p event.TransactionPayloadV1
		if p, err = event.DecodePayload[event.TransactionPayloadV1](evt.Payload); err == nil {
			Transactions.WithLabelValues(p.TransactionType).Inc()
			TransactionAmount.WithLabelValues(p.TransactionType).Add(float64(p.Amount))
		}

	case event.PortfolioAllocated:
		var p event.PortfolioAllocatedPayloadV1
		if p, err = event.DecodePayload[event.PortfolioAllocatedPayloadV1](evt.Payload); err == nil {
			PortfoliosAllocated.WithLabelValues(p.RiskLevel).Inc()
			AllocationDuration.WithLabelValues(p.RiskLevel).Observe(p.DurationSeconds)
			AllocationSelected.Observe(float64(p.SelectedCount))
			if p.Capacity > 0 {
				AllocationUtilization.Observe(float64(p.Allocated) / float64(p.Capacity))
			}
		}

	case event.SecurityListChanged:
		var p event.SecurityChangedPayloadV1
		if p, err = event.DecodePayload[event.SecurityChangedPayloadV1](evt.Payload); err == nil {
			SecurityChanges.WithLabelValues(p.Action).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
