package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// User messages
	ErrMsgUsernameTakenError      = "Username already exists"
	ErrMsgInvalidCredentialsError = "Incorrect username or password"
	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgInvalidUsernameError    = "Username must be between 1 and 50 characters"
	ErrMsgPasswordRequiredError   = "Password is required"
	ErrMsgPasswordTooLongError    = "Password is too long"

	// Account messages
	ErrMsgBalanceNotFoundError        = "User balance not found"
	ErrMsgInsufficientBalanceError    = "Insufficient balance"
	ErrMsgInvalidTransactionTypeError = "Invalid transaction type"
	ErrMsgInvalidAmountError          = "Amount must be positive"

	// Securities messages
	ErrMsgSecurityNotFoundError = "Security not found"
	ErrMsgSecurityExistsError   = "Security code already exists"
	ErrMsgInvalidSecurityError  = "Security code and name must be between 1 and 50 characters"
	ErrMsgInvalidPriceError     = "Price must be non-negative"

	// Portfolio messages
	ErrMsgInvalidRiskLevelError    = "Invalid risk level"
	ErrMsgNotEnoughSecuritiesError = "Number of securities is less than 10"
	ErrMsgCapacityTooLargeError    = "Balance is too large to allocate"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a user-facing message.
// Anything not recognized is treated as an internal error without leaking its text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, ErrMsgNotAuthenticated
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrInvalidUsername):
		return http.StatusBadRequest, ErrMsgInvalidUsernameError
	case errors.Is(err, domain.ErrPasswordRequired):
		return http.StatusBadRequest, ErrMsgPasswordRequiredError
	case errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest, ErrMsgPasswordTooLongError
	case errors.Is(err, domain.ErrBalanceNotFound):
		return http.StatusBadRequest, ErrMsgBalanceNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientBalanceError
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return http.StatusBadRequest, ErrMsgInvalidTransactionTypeError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrSecurityNotFound):
		return http.StatusNotFound, ErrMsgSecurityNotFoundError
	case errors.Is(err, domain.ErrSecurityExists):
		return http.StatusBadRequest, ErrMsgSecurityExistsError
	case errors.Is(err, domain.ErrInvalidSecurity):
		return http.StatusBadRequest, ErrMsgInvalidSecurityError
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, ErrMsgInvalidPriceError
	case errors.Is(err, domain.ErrInvalidRiskLevel):
		return http.StatusBadRequest, ErrMsgInvalidRiskLevelError
	case errors.Is(err, domain.ErrNotEnoughSecurities):
		return http.StatusBadRequest, ErrMsgNotEnoughSecuritiesError
	case errors.Is(err, domain.ErrCapacityTooLarge):
		return http.StatusBadRequest, ErrMsgCapacityTooLargeError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
