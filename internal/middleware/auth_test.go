package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// TestWithUser_UserFromContext tests context user management
func TestWithUser_UserFromContext(t *testing.T) {
	t.Run("stores and retrieves user from context", func(t *testing.T) {
		user := &domain.User{ID: 1, Username: "alice"}

		retrieved, ok := UserFromContext(WithUser(context.Background(), user))

		assert.True(t, ok)
		assert.Equal(t, user, retrieved)
	})

	t.Run("missing user", func(t *testing.T) {
		_, ok := UserFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type value", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserKey, "alice")
		_, ok := UserFromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("nil user", func(t *testing.T) {
		_, ok := UserFromContext(WithUser(context.Background(), nil))
		assert.False(t, ok)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer alice", "alice", true},
		{"bearer alice", "alice", true},
		{"Bearer   alice  ", "alice", true},
		{"Bearer ", "", false},
		{"Basic YWxpY2U6cHc=", "", false},
		{"alice", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			got, ok := BearerToken(req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireUser(t *testing.T) {
	var seen *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token", func(t *testing.T) {
		auth := new(MockAuthenticator)
		user := &domain.User{ID: 1, Username: "alice"}
		auth.On("Authenticate", mock.Anything, "alice").Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		req.Header.Set(HeaderAuthorization, "Bearer alice")
		rec := httptest.NewRecorder()

		RequireUser(auth)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user, seen)
	})

	t.Run("missing token", func(t *testing.T) {
		auth := new(MockAuthenticator)
		rec := httptest.NewRecorder()

		RequireUser(auth)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/balance", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, BearerScheme, rec.Header().Get(HeaderWWWAuthenticate))
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidCredentials)
		auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("unknown token", func(t *testing.T) {
		auth := new(MockAuthenticator)
		auth.On("Authenticate", mock.Anything, "ghost").Return(nil, domain.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		req.Header.Set(HeaderAuthorization, "Bearer ghost")
		rec := httptest.NewRecorder()

		RequireUser(auth)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, BearerScheme, rec.Header().Get(HeaderWWWAuthenticate))
	})

	t.Run("lookup failure", func(t *testing.T) {
		auth := new(MockAuthenticator)
		auth.On("Authenticate", mock.Anything, "alice").Return(nil, domain.ErrDatabaseError)

		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		req.Header.Set(HeaderAuthorization, "Bearer alice")
		rec := httptest.NewRecorder()

		RequireUser(auth)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
