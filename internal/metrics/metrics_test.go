package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StockDesk_Go/internal/event"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Delete("/securities/{security_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/securities/{security_id}", "404"))

	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodDelete, "/securities/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/securities/{security_id}", "404"))
	assert.Equal(t, 2.0, after-before)
}

func TestMiddleware_UnmatchedRoutesShareOneSeries(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/securities", func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))

	for _, path := range []string{"/wp-admin", "/.env", "/random/123"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))
	assert.Equal(t, 3.0, after-before)
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plain", "200"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plain", "200"))
	assert.Equal(t, 1.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	t.Run("Registration", func(t *testing.T) {
		before := testutil.ToFloat64(UsersRegistered)
		require.NoError(t, bus.Publish(ctx, event.NewUserEvent(event.UserRegistered, "alice")))
		assert.Equal(t, 1.0, testutil.ToFloat64(UsersRegistered)-before)
	})

	t.Run("Sessions", func(t *testing.T) {
		login := Sessions.WithLabelValues(string(event.UserLoggedIn))
		before := testutil.ToFloat64(login)
		require.NoError(t, bus.Publish(ctx, event.NewUserEvent(event.UserLoggedIn, "alice")))
		assert.Equal(t, 1.0, testutil.ToFloat64(login)-before)
	})

	t.Run("Transaction", func(t *testing.T) {
		count := Transactions.WithLabelValues("deposit")
		amount := TransactionAmount.WithLabelValues("deposit")
		beforeCount, beforeAmount := testutil.ToFloat64(count), testutil.ToFloat64(amount)

		require.NoError(t, bus.Publish(ctx, event.NewTransactionEvent("alice", 250, "deposit", 250)))

		assert.Equal(t, 1.0, testutil.ToFloat64(count)-beforeCount)
		assert.Equal(t, 250.0, testutil.ToFloat64(amount)-beforeAmount)
	})

	t.Run("PortfolioAllocated", func(t *testing.T) {
		counter := PortfoliosAllocated.WithLabelValues("type1")
		before := testutil.ToFloat64(counter)

		require.NoError(t, bus.Publish(ctx, event.NewPortfolioAllocatedEvent(event.PortfolioAllocatedPayloadV1{
			UserID:          1,
			RiskLevel:       "type1",
			Capacity:        100,
			Allocated:       90,
			SelectedCount:   3,
			CatalogSize:     12,
			DurationSeconds: 0.001,
		})))

		assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	})

	t.Run("SecurityChanged", func(t *testing.T) {
		counter := SecurityChanges.WithLabelValues(event.SecurityActionDeleted)
		before := testutil.ToFloat64(counter)
		require.NoError(t, bus.Publish(ctx, event.NewSecurityChangedEvent("AAA", event.SecurityActionDeleted)))
		assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	})

	t.Run("BadPayloadCountsError", func(t *testing.T) {
		counter := EventHandlerErrors.WithLabelValues(string(event.TransactionCreated))
		before := testutil.ToFloat64(counter)
		require.NoError(t, bus.Publish(ctx, event.Event{Type: event.TransactionCreated, Payload: "not a payload"}))
		assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	})
}
