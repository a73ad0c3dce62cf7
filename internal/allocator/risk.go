package allocator

import (
	"errors"
	"fmt"
)

// ErrInvalidRiskLevel is returned for an unknown risk level
var ErrInvalidRiskLevel = errors.New(ErrMsgInvalidRiskLevel)

// RiskLevel selects how much of the balance an allocation may spend.
type RiskLevel string

// ParseRiskLevel validates a raw risk level string.
func ParseRiskLevel(raw string) (RiskLevel, error) {
	level := RiskLevel(raw)
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRiskLevel, raw)
	}
	return level, nil
}

// Valid reports whether the risk level is known.
func (r RiskLevel) Valid() bool {
	return r == RiskLevelFull || r == RiskLevelHalf
}

// Capacity returns the budget for the given balance:
// the whole balance for type1, half of it rounded down for type2.
func (r RiskLevel) Capacity(balance int) (int, error) {
	if balance < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCapacity, balance)
	}
	switch r {
	case RiskLevelFull:
		return balance, nil
	case RiskLevelHalf:
		return balance / 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRiskLevel, string(r))
	}
}

// AllocateForRisk runs Allocate with the capacity implied by the risk level.
func AllocateForRisk(balance int, level RiskLevel, catalog Catalog) ([]string, error) {
	capacity, err := level.Capacity(balance)
	if err != nil {
		return nil, err
	}
	return Allocate(capacity, catalog)
}
