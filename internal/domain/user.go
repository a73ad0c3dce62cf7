package domain

import "time"

// User represents a registered account holder
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Balance is the cash a user has available to deposit, withdraw, or allocate
type Balance struct {
	UserID  int64 `json:"user_id"`
	Balance int64 `json:"balance"`
}

// HistoryEvent names a session event recorded in the user history
type HistoryEvent string

// Session events
const (
	HistoryEventLogin  HistoryEvent = "LOGIN"
	HistoryEventLogout HistoryEvent = "LOGOUT"
)

// UserHistory is a single login or logout entry
type UserHistory struct {
	ID       int64        `json:"id"`
	Time     time.Time    `json:"time"`
	Username string       `json:"username"`
	Event    HistoryEvent `json:"event"`
}

// Token is the bearer token handed out at login
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenTypeBearer is the only token type issued
const TokenTypeBearer = "bearer"

// UserProfile is a user together with their balance rows as returned at registration
type UserProfile struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	BalanceInfo []Balance `json:"balance_info"`
}
