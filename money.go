package rollbook

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The ledger computes in float64; Money and Points exist at the rendering
// boundary, which is where presentation rounding belongs.

// Money represents a monetary value for display.
type Money struct {
	value decimal.Decimal
	cur   string
}

// USD wraps a dollar amount. Futures P&L on US exchanges is settled in USD.
func USD(v float64) Money {
	return Money{value: decimal.NewFromFloat(v), cur: money.USD}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$2,500.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit sign for gains, e.g. "+$2,500.00".
func (m Money) SignedString() string {
	if m.value.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}

func (m Money) IsNegative() bool { return m.value.IsNegative() }

// MarshalJSON renders the money as its display string.
func (m Money) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// Points represents a value in price points, before any multiplier.
type Points float64

func (p Points) String() string {
	return fmt.Sprintf("%.2f pts", float64(p))
}
