package handler

import (
	"net/http"

	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/portfolio"
)

// CreatePortfolioRequest asks for an allocation at the given risk level
type CreatePortfolioRequest struct {
	RiskLevel string `json:"risk_level" validate:"required,max=50"`
}

// PortfolioResponse is the stored allocation
type PortfolioResponse struct {
	RiskLevel string `json:"risk_level"`
	Portfolio string `json:"portfolio"`
}

// HandleCreatePortfolio allocates the caller's balance across the catalog.
// type1 spends up to the full balance, type2 up to half.
// @Summary Allocate a portfolio
// @Tags portfolios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePortfolioRequest true "Risk level"
// @Success 200 {object} PortfolioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /portfolios [post]
func HandleCreatePortfolio(svc portfolio.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CreatePortfolioRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create portfolio"); err != nil {
			return
		}

		p, err := svc.Create(r.Context(), u, req.RiskLevel)
		if err != nil {
			respondServiceError(w, r, "Create portfolio", err)
			return
		}

		logger.FromContext(r.Context()).Info("Portfolio created",
			"user_id", u.ID, "risk_level", p.RiskLevel, "portfolio", p.Portfolio)
		respondJSON(w, http.StatusOK, PortfolioResponse{
			RiskLevel: p.RiskLevel,
			Portfolio: p.Portfolio,
		})
	}
}

// HandleListPortfolios lists the caller's past allocations, newest first
// @Summary List portfolios
// @Tags portfolios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Portfolio
// @Failure 401 {object} ErrorResponse
// @Router /portfolios [get]
func HandleListPortfolios(svc portfolio.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireUser(w, r)
		if !ok {
			return
		}

		list, err := svc.List(r.Context(), u)
		if err != nil {
			respondServiceError(w, r, "List portfolios", err)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}
