package domain

import "time"

// TransactionType is the direction of a balance movement
type TransactionType string

// Supported transaction types
const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

// Valid reports whether t is a supported transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionDeposit || t == TransactionWithdraw
}

// Transaction records a deposit or withdrawal
type Transaction struct {
	ID              int64           `json:"id"`
	Time            time.Time       `json:"time"`
	Username        string          `json:"username"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
}
