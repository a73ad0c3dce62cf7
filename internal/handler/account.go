package handler

import (
	"net/http"

	"github.com/osse101/StockDesk_Go/internal/account"
	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/logger"
)

// CreateTransactionRequest is a deposit or withdrawal against the caller's balance
type CreateTransactionRequest struct {
	Amount          int64  `json:"amount" validate:"gt=0"`
	TransactionType string `json:"transaction_type" validate:"required,max=50"`
}

// TransactionResponse echoes an accepted transaction
type TransactionResponse struct {
	Amount          int64                  `json:"amount"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	Username        string                 `json:"username"`
}

// HandleGetBalance returns the caller's balance
// @Summary Current balance
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} account.BalanceView
// @Failure 401 {object} ErrorResponse
// @Router /balance [get]
func HandleGetBalance(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireUser(w, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), u)
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, balance)
	}
}

// HandleCreateTransaction deposits to or withdraws from the caller's balance
// @Summary Deposit or withdraw
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [post]
func HandleCreateTransaction(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CreateTransactionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create transaction"); err != nil {
			return
		}

		tx, err := svc.CreateTransaction(r.Context(), u, req.Amount, req.TransactionType)
		if err != nil {
			respondServiceError(w, r, "Create transaction", err)
			return
		}

		logger.FromContext(r.Context()).Info("Transaction created",
			"username", tx.Username, "type", tx.TransactionType, "amount", tx.Amount)
		respondJSON(w, http.StatusOK, TransactionResponse{
			Amount:          tx.Amount,
			TransactionType: tx.TransactionType,
			Username:        tx.Username,
		})
	}
}

// HandleListTransactions lists the caller's most recent transactions
// @Summary Transaction history
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries"
// @Success 200 {array} domain.Transaction
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func HandleListTransactions(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireUser(w, r)
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		txs, err := svc.ListTransactions(r.Context(), u, limit)
		if err != nil {
			respondServiceError(w, r, "List transactions", err)
			return
		}

		respondJSON(w, http.StatusOK, txs)
	}
}
