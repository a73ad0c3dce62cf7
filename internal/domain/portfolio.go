package domain

import (
	"strings"
	"time"
)

// PortfolioSeparator joins security codes in the stored portfolio column
const PortfolioSeparator = ","

// Portfolio is a stored allocation result
type Portfolio struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RiskLevel string    `json:"risk_level"`
	Portfolio string    `json:"portfolio"`
	CreatedAt time.Time `json:"created_at"`
}

// JoinPortfolio serializes selected security codes for storage
func JoinPortfolio(codes []string) string {
	return strings.Join(codes, PortfolioSeparator)
}

// Codes splits the stored portfolio back into security codes
func (p Portfolio) Codes() []string {
	if p.Portfolio == "" {
		return []string{}
	}
	return strings.Split(p.Portfolio, PortfolioSeparator)
}
