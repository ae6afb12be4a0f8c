package rollbook

import (
	"fmt"

	"github.com/etnz/rollbook/date"
)

// Direction is the stance of a position, long or short.
type Direction int

const (
	// Long profits when the price rises.
	Long Direction = iota
	// Short profits when the price falls.
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "LONG"
	case Short:
		return "SHORT"
	default:
		return "unknown"
	}
}

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "LONG":
		return Long, nil
	case "SHORT":
		return Short, nil
	default:
		return 0, fmt.Errorf("unknown direction: %q", s)
	}
}

// RollEntry is a single contract period in a ledger: one contiguous holding
// of a specific contract month.
//
// An entry is active while its exit fields are unset. Prices are strictly
// positive, so a zero ExitPrice means "not exited yet". Closed entries are
// never deleted; they remain in the ledger for audit and charting.
type RollEntry struct {
	Number     int       // 1-based sequence number, assigned by the ledger.
	Contract   string    // contract label, e.g. "ESH25".
	EntryDate  date.Date //
	EntryPrice float64   //
	ExitDate   date.Date // zero while the entry is active.
	ExitPrice  float64   // zero while the entry is active.
	Quantity   int       // contracts held, positive.
	Direction  Direction //
	Notes      string    // free-form, may be empty.
}

// Active reports whether this entry is still the open contract period.
func (e RollEntry) Active() bool { return e.ExitPrice == 0 }

// RealizedPerContract returns the realized P&L in price points for one
// contract, exit-entry for a long and entry-exit for a short.
// It reports false for an active entry, which has realized nothing yet.
func (e RollEntry) RealizedPerContract() (float64, bool) {
	if e.Active() {
		return 0, false
	}
	if e.Direction == Long {
		return e.ExitPrice - e.EntryPrice, true
	}
	return e.EntryPrice - e.ExitPrice, true
}

// Realized returns the realized P&L in dollars, scaled by the contract
// multiplier and the quantity held. It reports false for an active entry.
func (e RollEntry) Realized(multiplier float64) (float64, bool) {
	per, ok := e.RealizedPerContract()
	if !ok {
		return 0, false
	}
	return per * multiplier * float64(e.Quantity), true
}

// UnrealizedPerContract returns the mark-to-market P&L in price points for
// one contract at the given price. It reports false for a closed entry.
func (e RollEntry) UnrealizedPerContract(current float64) (float64, bool) {
	if !e.Active() {
		return 0, false
	}
	if e.Direction == Long {
		return current - e.EntryPrice, true
	}
	return e.EntryPrice - current, true
}

// Unrealized returns the mark-to-market P&L in dollars, scaled by the
// contract multiplier and the quantity held. It reports false for a closed entry.
func (e RollEntry) Unrealized(current, multiplier float64) (float64, bool) {
	per, ok := e.UnrealizedPerContract(current)
	if !ok {
		return 0, false
	}
	return per * multiplier * float64(e.Quantity), true
}
