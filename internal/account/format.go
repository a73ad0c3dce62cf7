package account

import (
	"github.com/Rhymond/go-money"
)

// DefaultCurrency is used when the configured currency code is unknown
const DefaultCurrency = money.KRW

// formatter renders whole-unit balances in a fixed currency
type formatter struct {
	code   string
	factor int64
}

// newFormatter builds a formatter for an ISO 4217 code. Unknown codes fall back to DefaultCurrency.
func newFormatter(code string) formatter {
	cur := money.GetCurrency(code)
	if cur == nil {
		code = DefaultCurrency
		cur = money.GetCurrency(code)
	}

	factor := int64(1)
	for i := 0; i < cur.Fraction; i++ {
		factor *= 10
	}
	return formatter{code: code, factor: factor}
}

// Format converts a whole-unit amount to its display form, e.g. ₩1,000 or $12.00
func (f formatter) Format(amount int64) string {
	return money.New(amount*f.factor, f.code).Display()
}
