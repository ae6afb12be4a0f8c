package rollbook

import (
	"errors"
	"fmt"
	"iter"

	"github.com/etnz/rollbook/date"
)

// ErrAlreadyOpen is returned by Open when the ledger already has entries.
var ErrAlreadyOpen = errors.New("ledger already has entries, use Roll to add contract periods")

// ErrNoActiveEntry is returned by Roll and Close when there is no active
// contract period to act on.
var ErrNoActiveEntry = errors.New("no active contract period")

// Ledger tracks a single futures position across multiple contract rolls.
//
// Futures price charts are saw-toothed: contracts expire and prices jump at
// each roll. The ledger carries realized P&L forward as an adjustment to
// cost basis, normalizing the sawtooth into one continuous performance line.
//
// Entries are kept in insertion order, which is chronological order. The
// ledger is append-only: a closed entry is mutated exactly once (its exit
// fields are set) and never removed.
//
// A Ledger is a plain value holder for a single caller; it is not safe for
// concurrent mutation.
type Ledger struct {
	instrument string
	multiplier float64 // dollars per price point, fixed for the ledger's lifetime.
	entries    []RollEntry
}

// NewLedger creates an empty ledger for one instrument with its contract
// multiplier (e.g. $50/pt for ES).
func NewLedger(instrument string, multiplier float64) *Ledger {
	return &Ledger{instrument: instrument, multiplier: multiplier}
}

// Instrument returns the underlying instrument identifier (e.g. "ES").
func (l *Ledger) Instrument() string { return l.instrument }

// Multiplier returns the contract multiplier in dollars per price point.
func (l *Ledger) Multiplier() float64 { return l.multiplier }

// Len returns the number of contract periods, closed and active.
func (l *Ledger) Len() int { return len(l.entries) }

// active returns the index of the active entry, or -1.
// Only the last entry can be active.
func (l *Ledger) active() int {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Active() {
			return i
		}
	}
	return -1
}

// Active returns a copy of the active contract period, if any.
func (l *Ledger) Active() (RollEntry, bool) {
	if i := l.active(); i >= 0 {
		return l.entries[i], true
	}
	return RollEntry{}, false
}

// Entries returns an iterator over all contract periods in sequence order.
func (l *Ledger) Entries() iter.Seq2[int, RollEntry] {
	return func(yield func(int, RollEntry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Closed returns an iterator over the closed contract periods in sequence order.
func (l *Ledger) Closed() iter.Seq[RollEntry] {
	return func(yield func(RollEntry) bool) {
		for _, e := range l.entries {
			if e.Active() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Open records the first contract period of the position.
//
// It fails with ErrAlreadyOpen if the ledger already has entries: opening
// must never silently overwrite existing history. On any error the ledger
// is left unmodified.
func (l *Ledger) Open(contract string, on date.Date, price float64, quantity int, dir Direction, notes string) (RollEntry, error) {
	if len(l.entries) > 0 {
		return RollEntry{}, ErrAlreadyOpen
	}
	if price <= 0 {
		return RollEntry{}, fmt.Errorf("entry price must be positive, got %v", price)
	}
	if quantity <= 0 {
		return RollEntry{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	e := RollEntry{
		Number:     1,
		Contract:   contract,
		EntryDate:  on,
		EntryPrice: price,
		Quantity:   quantity,
		Direction:  dir,
		Notes:      notes,
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// Roll closes the current contract period and opens the next one, in one
// atomic step from the caller's point of view.
//
// The exit price of the old contract and the entry price of the new one
// usually differ: that is the roll gap (contango or backwardation jump).
// The gap is captured implicitly because the old period's realized P&L uses
// its own entry/exit pair only, and is never subtracted out.
//
// A zero newEntryDate defaults to exitDate, a zero newQuantity inherits the
// active quantity. The direction always carries over: rolling does not
// change the long/short stance.
//
// It fails with ErrNoActiveEntry when no contract period is active. On any
// error the ledger is left unmodified.
func (l *Ledger) Roll(exitPrice float64, exitDate date.Date, newContract string, newEntryPrice float64, newEntryDate date.Date, newQuantity int, notes string) (RollEntry, error) {
	i := l.active()
	if i < 0 {
		return RollEntry{}, fmt.Errorf("cannot roll: %w", ErrNoActiveEntry)
	}
	if exitPrice <= 0 {
		return RollEntry{}, fmt.Errorf("exit price must be positive, got %v", exitPrice)
	}
	if newEntryPrice <= 0 {
		return RollEntry{}, fmt.Errorf("new entry price must be positive, got %v", newEntryPrice)
	}
	if newQuantity < 0 {
		return RollEntry{}, fmt.Errorf("new quantity must be positive, got %d", newQuantity)
	}

	active := &l.entries[i]
	if newEntryDate.IsZero() {
		newEntryDate = exitDate
	}
	if newQuantity == 0 {
		newQuantity = active.Quantity
	}

	active.ExitPrice = exitPrice
	active.ExitDate = exitDate

	e := RollEntry{
		Number:     active.Number + 1,
		Contract:   newContract,
		EntryDate:  newEntryDate,
		EntryPrice: newEntryPrice,
		Quantity:   newQuantity,
		Direction:  active.Direction,
		Notes:      notes,
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// Close terminates the position: it sets the exit fields of the active
// contract period without opening a successor. After Close the ledger has
// no active period and no further Roll or Close is permitted.
//
// It fails with ErrNoActiveEntry when no contract period is active. On any
// error the ledger is left unmodified.
func (l *Ledger) Close(exitPrice float64, exitDate date.Date) error {
	i := l.active()
	if i < 0 {
		return fmt.Errorf("cannot close: %w", ErrNoActiveEntry)
	}
	if exitPrice <= 0 {
		return fmt.Errorf("exit price must be positive, got %v", exitPrice)
	}
	l.entries[i].ExitPrice = exitPrice
	l.entries[i].ExitDate = exitDate
	return nil
}

// TotalRealized returns the realized P&L in dollars summed over all closed
// contract periods. An empty sum is 0.
func (l *Ledger) TotalRealized() float64 {
	var total float64
	for e := range l.Closed() {
		if pnl, ok := e.Realized(l.multiplier); ok {
			total += pnl
		}
	}
	return total
}

// TotalRealizedPerContract returns the realized P&L in price points for one
// contract summed over all closed periods. It ignores quantity and
// multiplier; it only serves the per-contract true P&L view.
func (l *Ledger) TotalRealizedPerContract() float64 {
	var total float64
	for e := range l.Closed() {
		if per, ok := e.RealizedPerContract(); ok {
			total += per
		}
	}
	return total
}

// Breakeven returns the price at which the entire position, across all
// rolls, breaks even.
//
// Banked profit is a cushion: it lowers the price a long needs to break
// even (entry - adjustment) and raises the price a short can tolerate
// before losing (entry + adjustment). Banked losses do the opposite.
//
// It reports false when there is no active period, or when the adjustment
// is undefined (zero quantity or zero multiplier): never an Inf or NaN.
func (l *Ledger) Breakeven() (float64, bool) {
	active, ok := l.Active()
	if !ok {
		return 0, false
	}
	if active.Quantity == 0 || l.multiplier == 0 {
		return 0, false
	}
	adjustment := l.TotalRealized() / (l.multiplier * float64(active.Quantity))
	if active.Direction == Long {
		return active.EntryPrice - adjustment, true
	}
	return active.EntryPrice + adjustment, true
}

// TruePNL returns the sawtooth-normalized P&L in dollars at the given
// price: the unrealized P&L of the active period plus all realized P&L.
// It equals what the trader would have made holding one continuous
// synthetic instrument since day one.
//
// It reports false when there is no active period.
func (l *Ledger) TruePNL(current float64) (float64, bool) {
	active, ok := l.Active()
	if !ok {
		return 0, false
	}
	unrealized, ok := active.Unrealized(current, l.multiplier)
	if !ok {
		return 0, false
	}
	return unrealized + l.TotalRealized(), true
}

// TruePNLPerContract is the per-contract analogue of TruePNL, in price
// points, ignoring multiplier and quantity. It serves charting in
// price-point terms.
func (l *Ledger) TruePNLPerContract(current float64) (float64, bool) {
	active, ok := l.Active()
	if !ok {
		return 0, false
	}
	unrealized, ok := active.UnrealizedPerContract(current)
	if !ok {
		return 0, false
	}
	return unrealized + l.TotalRealizedPerContract(), true
}
