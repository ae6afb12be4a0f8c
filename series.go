package rollbook

import (
	"iter"

	"github.com/etnz/rollbook/date"
)

// Series event kinds.
const (
	// EventEntry marks the opening of a contract period.
	EventEntry = "entry"
	// EventExit marks the close of a contract period, by roll or final close.
	EventExit = "exit/roll"
)

// SeriesPoint is one event of the cumulative P&L series.
type SeriesPoint struct {
	Number   int       // sequence number of the contract period.
	Contract string    // contract label of the period.
	On       date.Date // entry or exit date of the period.
	Cum      float64   // cumulative realized P&L in dollars at this event.
	Event    string    // EventEntry or EventExit.
}

// CumulativeSeries returns the cumulative realized P&L series for charting,
// as a lazy, restartable iterator.
//
// Each period yields an entry event carrying the realized P&L accumulated
// strictly before the period opened; each closed period also yields an exit
// event carrying the total through and including it. The running total
// starts at 0 and only moves at exit events, by that period's realized P&L
// scaled by multiplier and quantity.
//
// Events follow period sequence order, not a date sort: the caller is
// responsible for supplying chronologically non-decreasing dates.
func (l *Ledger) CumulativeSeries() iter.Seq[SeriesPoint] {
	return func(yield func(SeriesPoint) bool) {
		var cum float64
		for _, e := range l.entries {
			if !yield(SeriesPoint{
				Number:   e.Number,
				Contract: e.Contract,
				On:       e.EntryDate,
				Cum:      cum,
				Event:    EventEntry,
			}) {
				return
			}
			if e.Active() {
				continue
			}
			if pnl, ok := e.Realized(l.multiplier); ok {
				cum += pnl
			}
			if !yield(SeriesPoint{
				Number:   e.Number,
				Contract: e.Contract,
				On:       e.ExitDate,
				Cum:      cum,
				Event:    EventExit,
			}) {
				return
			}
		}
	}
}
