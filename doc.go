// Package rollbook tracks a single futures position across contract rolls.
//
// Futures charts are saw-toothed: each time a trader closes one contract
// month and opens the next, the price jumps by the roll gap. This package
// normalizes that discontinuity by carrying realized P&L forward as an
// adjustment to cost basis:
//
//	True P&L  = unrealized P&L of the active contract + realized P&L of all closed ones
//	Breakeven = active entry price -/+ total realized / (multiplier * quantity)
//
// The core functionalities include:
//   - Roll Ledger: an append-only record of contract periods for one
//     position, with the open/roll/close operations and the realized,
//     unrealized, true P&L and breakeven queries.
//   - Persistence: lossless encoding of the whole ledger state to a flat,
//     human-readable CSV document.
//   - Instrument Catalog: a static table of futures products with their
//     contract multipliers, exchanges and Yahoo Finance tickers, plus the
//     standard month-code contract symbol builder.
//   - Market Data: best-effort close-price and roll-volume fetching from
//     the Yahoo chart API; a failed fetch is a normal absent value.
//
// This package serves as the foundational logic for the `rollbook`
// command-line tool. A ledger is a plain value owned by its caller and is
// not safe for concurrent mutation.
package rollbook
