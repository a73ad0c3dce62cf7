package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUsernameTaken      = "username already exists"
	ErrMsgInvalidCredentials = "incorrect username or password"
	ErrMsgInvalidToken       = "invalid authentication credentials"
	ErrMsgInvalidUsername    = "username must be between 1 and 50 characters"
	ErrMsgPasswordRequired   = "password is required"
	ErrMsgPasswordTooLong    = "password is too long"

	// Balance and transaction errors
	ErrMsgBalanceNotFound        = "user balance not found"
	ErrMsgInsufficientFunds      = "insufficient balance"
	ErrMsgInvalidTransactionType = "invalid transaction type"
	ErrMsgInvalidAmount          = "amount must be positive"

	// Security errors
	ErrMsgSecurityNotFound = "security not found"
	ErrMsgSecurityExists   = "security code already exists"
	ErrMsgInvalidPrice     = "price must be non-negative"
	ErrMsgInvalidSecurity  = "security code and name must be between 1 and 50 characters"

	// Portfolio errors
	ErrMsgInvalidRiskLevel    = "invalid risk level"
	ErrMsgNotEnoughSecurities = "number of securities is less than the minimum"
	ErrMsgCapacityTooLarge    = "balance exceeds the allocation limit"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrInvalidToken       = errors.New(ErrMsgInvalidToken)
	ErrInvalidUsername    = errors.New(ErrMsgInvalidUsername)
	ErrPasswordRequired   = errors.New(ErrMsgPasswordRequired)
	ErrPasswordTooLong    = errors.New(ErrMsgPasswordTooLong)

	// Balance and transaction errors
	ErrBalanceNotFound        = errors.New(ErrMsgBalanceNotFound)
	ErrInsufficientFunds      = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidTransactionType = errors.New(ErrMsgInvalidTransactionType)
	ErrInvalidAmount          = errors.New(ErrMsgInvalidAmount)

	// Security errors
	ErrSecurityNotFound = errors.New(ErrMsgSecurityNotFound)
	ErrSecurityExists   = errors.New(ErrMsgSecurityExists)
	ErrInvalidPrice     = errors.New(ErrMsgInvalidPrice)
	ErrInvalidSecurity  = errors.New(ErrMsgInvalidSecurity)

	// Portfolio errors
	ErrInvalidRiskLevel    = errors.New(ErrMsgInvalidRiskLevel)
	ErrNotEnoughSecurities = errors.New(ErrMsgNotEnoughSecurities)
	ErrCapacityTooLarge    = errors.New(ErrMsgCapacityTooLarge)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
