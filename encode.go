package rollbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/etnz/rollbook/date"
)

// This file contains code to persist a ledger as a single CSV document, in
// a way that is human-readable and git-friendly.
//
// The layout is:
//
//	#meta,instrument,contract_multiplier
//	#meta,ES,50
//
//	roll_number,contract_symbol,entry_date,entry_price,exit_date,exit_price,quantity,direction,notes
//	1,ESH25,2025-01-15,5000,2025-03-14,5050,1,LONG,
//	2,ESM25,2025-03-14,5060,,,1,LONG,
//
// Both #meta rows start with the same marker; the header is told apart from
// the data record by its multiplier column not parsing as a number. Rows may
// omit trailing columns (quantity, direction, notes): older or hand-edited
// files still load with their documented defaults.

const metaMarker = "#meta"

var metaHeader = []string{metaMarker, "instrument", "contract_multiplier"}

var entryHeader = []string{
	"roll_number",
	"contract_symbol",
	"entry_date",
	"entry_price",
	"exit_date",
	"exit_price",
	"quantity",
	"direction",
	"notes",
}

// fpoint formats a price or multiplier with the minimal number of digits
// that round-trips exactly.
func fpoint(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// EncodeLedger writes the entire ledger state to w in the CSV layout.
//
// Round-trip contract: DecodeLedger(EncodeLedger(l)) reconstructs a ledger
// equal in all fields for any ledger built through Open, Roll and Close.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(metaHeader); err != nil {
		return fmt.Errorf("cannot write meta header: %w", err)
	}
	if err := cw.Write([]string{metaMarker, l.Instrument(), fpoint(l.Multiplier())}); err != nil {
		return fmt.Errorf("cannot write meta record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write meta section: %w", err)
	}

	// Blank separator between the meta section and the entries.
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("cannot write separator: %w", err)
	}

	if err := cw.Write(entryHeader); err != nil {
		return fmt.Errorf("cannot write entry header: %w", err)
	}
	for _, e := range l.entries {
		exitDate, exitPrice := "", ""
		if !e.Active() {
			exitDate = e.ExitDate.String()
			exitPrice = fpoint(e.ExitPrice)
		}
		row := []string{
			strconv.Itoa(e.Number),
			e.Contract,
			e.EntryDate.String(),
			fpoint(e.EntryPrice),
			exitDate,
			exitPrice,
			strconv.Itoa(e.Quantity),
			e.Direction.String(),
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write entry %d: %w", e.Number, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeLedger reads a ledger back from the CSV layout written by EncodeLedger.
//
// Decoding is strict on required fields (sequence number, contract label,
// entry date, entry price) and on the presence of the entry header row, and
// lenient on trailing optional columns: a missing quantity defaults to 1,
// direction to LONG and notes to empty, so the format stays forward
// compatible with additive columns.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows have a variable number of columns.

	var instrument string
	multiplier := 1.0
	var entries []RollEntry
	headerSeen := false

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed ledger csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case metaMarker:
			// The meta header and the meta record share the marker; only
			// the record has a numeric multiplier column.
			if len(row) > 2 {
				if m, err := strconv.ParseFloat(row[2], 64); err == nil {
					instrument = row[1]
					multiplier = m
				}
			}
			continue
		case entryHeader[0]:
			headerSeen = true
			continue
		}

		if !headerSeen {
			return nil, fmt.Errorf("line %d: unexpected record %q before the %q header row", line, row[0], entryHeader[0])
		}

		e, err := decodeEntry(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}

	if !headerSeen {
		return nil, fmt.Errorf("missing %q header row", entryHeader[0])
	}

	ledger := NewLedger(instrument, multiplier)
	ledger.entries = entries
	return ledger, nil
}

// decodeEntry parses one CSV row into a RollEntry.
func decodeEntry(row []string) (RollEntry, error) {
	if len(row) < 4 {
		return RollEntry{}, fmt.Errorf("entry row has %d fields, want at least 4 (roll_number, contract_symbol, entry_date, entry_price)", len(row))
	}

	number, err := strconv.Atoi(row[0])
	if err != nil {
		return RollEntry{}, fmt.Errorf("invalid roll_number %q: %w", row[0], err)
	}
	contract := row[1]
	if contract == "" {
		return RollEntry{}, fmt.Errorf("missing contract_symbol")
	}
	entryDate, err := date.Parse(row[2])
	if err != nil {
		return RollEntry{}, fmt.Errorf("invalid entry_date: %w", err)
	}
	entryPrice, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return RollEntry{}, fmt.Errorf("invalid entry_price %q: %w", row[3], err)
	}

	e := RollEntry{
		Number:     number,
		Contract:   contract,
		EntryDate:  entryDate,
		EntryPrice: entryPrice,
		Quantity:   1,
		Direction:  Long,
	}

	var exitDate, exitPrice string
	if len(row) > 4 {
		exitDate = row[4]
	}
	if len(row) > 5 {
		exitPrice = row[5]
	}
	// Exit date and exit price are both present or both absent.
	if (exitDate == "") != (exitPrice == "") {
		return RollEntry{}, fmt.Errorf("exit_date %q and exit_price %q must both be set or both be empty", exitDate, exitPrice)
	}
	if exitPrice != "" {
		e.ExitDate, err = date.Parse(exitDate)
		if err != nil {
			return RollEntry{}, fmt.Errorf("invalid exit_date: %w", err)
		}
		e.ExitPrice, err = strconv.ParseFloat(exitPrice, 64)
		if err != nil {
			return RollEntry{}, fmt.Errorf("invalid exit_price %q: %w", exitPrice, err)
		}
	}

	if len(row) > 6 && row[6] != "" {
		e.Quantity, err = strconv.Atoi(row[6])
		if err != nil {
			return RollEntry{}, fmt.Errorf("invalid quantity %q: %w", row[6], err)
		}
	}
	if len(row) > 7 && row[7] != "" {
		e.Direction, err = ParseDirection(row[7])
		if err != nil {
			return RollEntry{}, err
		}
	}
	if len(row) > 8 {
		e.Notes = row[8]
	}
	return e, nil
}

// SaveLedger persists the ledger to a file, overwriting it.
func SaveLedger(filename string, l *Ledger) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create ledger file %q: %w", filename, err)
	}
	defer f.Close()
	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", filename, err)
	}
	return nil
}

// LoadLedger reads a ledger from a file.
func LoadLedger(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", filename, err)
	}
	defer f.Close()
	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", filename, err)
	}
	return l, nil
}
