package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

func TestHandleCreatePortfolio(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockPortfolioService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Full budget",
			body: `{"risk_level":"type1"}`,
			setupMock: func(m *MockPortfolioService) {
				m.On("Create", mock.Anything, testUser, "type1").
					Return(&domain.Portfolio{ID: 1, UserID: 7, RiskLevel: "type1", Portfolio: "B,C"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"risk_level":"type1","portfolio":"B,C"}`,
		},
		{
			name: "Empty selection",
			body: `{"risk_level":"type2"}`,
			setupMock: func(m *MockPortfolioService) {
				m.On("Create", mock.Anything, testUser, "type2").
					Return(&domain.Portfolio{ID: 2, UserID: 7, RiskLevel: "type2", Portfolio: ""}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"risk_level":"type2","portfolio":""}`,
		},
		{
			name: "Invalid risk level",
			body: `{"risk_level":"type3"}`,
			setupMock: func(m *MockPortfolioService) {
				m.On("Create", mock.Anything, testUser, "type3").Return(nil, domain.ErrInvalidRiskLevel)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid risk level"}`,
		},
		{
			name: "Catalog too small",
			body: `{"risk_level":"type1"}`,
			setupMock: func(m *MockPortfolioService) {
				m.On("Create", mock.Anything, testUser, "type1").Return(nil, domain.ErrNotEnoughSecurities)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Number of securities is less than 10"}`,
		},
		{
			name:           "Missing risk level",
			body:           `{}`,
			setupMock:      func(m *MockPortfolioService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"risk_level":"This field is required"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPortfolioService)
			tt.setupMock(svc)

			req := asUser(httptest.NewRequest(http.MethodPost, "/portfolios", strings.NewReader(tt.body)), testUser)
			w := httptest.NewRecorder()

			HandleCreatePortfolio(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListPortfolios(t *testing.T) {
	svc := new(MockPortfolioService)
	svc.On("List", mock.Anything, testUser).Return([]domain.Portfolio{
		{ID: 2, UserID: 7, RiskLevel: "type2", Portfolio: "A,B"},
	}, nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/portfolios", nil), testUser)
	w := httptest.NewRecorder()

	HandleListPortfolios(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"portfolio":"A,B"`)
}
