package rollbook

import "github.com/etnz/rollbook/date"

// makeESLedger creates an ES ledger with a realistic roll: buy ESH25 at
// 5000, roll out at 5050 (+50 pts = +$2500) into ESM25 at 5060 (a contango
// gap of 10 pts).
func makeESLedger() *Ledger {
	l := NewLedger("ES", 50.0)
	l.Open("ESH25", date.MustParse("2025-01-15"), 5000.0, 1, Long, "")
	l.Roll(5050.0, date.MustParse("2025-03-14"), "ESM25", 5060.0, date.Date{}, 0, "")
	return l
}

// approx compares two floats with the precision that matters for P&L in dollars.
func approx(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
