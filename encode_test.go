package rollbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/rollbook/date"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := makeESLedger()

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	restored, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if restored.Instrument() != l.Instrument() {
		t.Errorf("instrument = %q, want %q", restored.Instrument(), l.Instrument())
	}
	if restored.Multiplier() != l.Multiplier() {
		t.Errorf("multiplier = %v, want %v", restored.Multiplier(), l.Multiplier())
	}
	if restored.Len() != l.Len() {
		t.Fatalf("Len() = %d, want %d", restored.Len(), l.Len())
	}
	for i, want := range l.Entries() {
		if got := restored.entries[i]; got != want {
			t.Errorf("entry %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestRoundTripWithQuotedNotes(t *testing.T) {
	// Notes holding the separator, quotes and line breaks must survive.
	l := NewLedger("NQ", 20.0)
	l.Open("NQH25", date.MustParse("2025-01-10"), 17000.0, 1, Long, `bullish setup, "fomc week"
second line`)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	restored, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	want := l.entries[0].Notes
	if got := restored.entries[0].Notes; got != want {
		t.Errorf("notes = %q, want %q", got, want)
	}
}

func TestRoundTripAfterClose(t *testing.T) {
	l := makeESLedger()
	l.Close(5100.0, date.MustParse("2025-06-13"))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	restored, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if _, ok := restored.Active(); ok {
		t.Errorf("restored ledger reports an active entry after a full close")
	}
	if got := restored.TotalRealized(); !approx(got, 4500.0) {
		t.Errorf("restored TotalRealized() = %v, want 4500", got)
	}
}

func TestDecodeDefaultsForTrailingColumns(t *testing.T) {
	// Older rows may miss quantity, direction and notes.
	text := `#meta,instrument,contract_multiplier
#meta,ES,50

roll_number,contract_symbol,entry_date,entry_price,exit_date,exit_price
1,ESH25,2025-01-15,5000,2025-03-14,5050
2,ESM25,2025-03-14,5060,,
`
	l, err := DecodeLedger(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if l.Instrument() != "ES" || l.Multiplier() != 50.0 {
		t.Fatalf("meta = %q/%v, want ES/50", l.Instrument(), l.Multiplier())
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	e := l.entries[0]
	if e.Quantity != 1 || e.Direction != Long || e.Notes != "" {
		t.Errorf("entry 0 defaults = qty %d dir %v notes %q, want 1 LONG \"\"", e.Quantity, e.Direction, e.Notes)
	}
	active, ok := l.Active()
	if !ok || active.Contract != "ESM25" {
		t.Errorf("Active() = %v, %v, want the ESM25 entry", active, ok)
	}
}

func TestDecodeSkipsMetaHeader(t *testing.T) {
	// The meta header and the meta record share the "#meta" marker; the
	// one whose multiplier column is not a number is the header.
	text := `#meta,instrument,contract_multiplier
#meta,CL,1000

roll_number,contract_symbol,entry_date,entry_price,exit_date,exit_price,quantity,direction,notes
1,CLH25,2025-01-10,75,,,1,SHORT,
`
	l, err := DecodeLedger(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if l.Instrument() != "CL" || l.Multiplier() != 1000.0 {
		t.Errorf("meta = %q/%v, want CL/1000", l.Instrument(), l.Multiplier())
	}
	if l.entries[0].Direction != Short {
		t.Errorf("direction = %v, want SHORT", l.entries[0].Direction)
	}
}

func TestDecodeMissingHeaderFails(t *testing.T) {
	text := `#meta,instrument,contract_multiplier
#meta,ES,50
`
	if _, err := DecodeLedger(strings.NewReader(text)); err == nil {
		t.Errorf("DecodeLedger() accepted a document without the entry header row")
	}
}

func TestDecodeMalformedRequiredFieldFails(t *testing.T) {
	for name, row := range map[string]string{
		"bad number":      `one,ESH25,2025-01-15,5000,,`,
		"bad entry date":  `1,ESH25,someday,5000,,`,
		"bad entry price": `1,ESH25,2025-01-15,expensive,,`,
		"missing fields":  `1,ESH25`,
		"half exit pair":  `1,ESH25,2025-01-15,5000,2025-03-14,`,
	} {
		text := "roll_number,contract_symbol,entry_date,entry_price,exit_date,exit_price\n" + row + "\n"
		if _, err := DecodeLedger(strings.NewReader(text)); err == nil {
			t.Errorf("%s: DecodeLedger() accepted %q", name, row)
		}
	}
}

func TestSaveLoadLedger(t *testing.T) {
	l := makeESLedger()
	filename := t.TempDir() + "/ledger.csv"
	if err := SaveLedger(filename, l); err != nil {
		t.Fatalf("SaveLedger() returned an unexpected error: %v", err)
	}
	restored, err := LoadLedger(filename)
	if err != nil {
		t.Fatalf("LoadLedger() returned an unexpected error: %v", err)
	}
	if restored.Len() != l.Len() || restored.Instrument() != l.Instrument() {
		t.Errorf("loaded ledger differs: %d entries of %q, want %d of %q",
			restored.Len(), restored.Instrument(), l.Len(), l.Instrument())
	}
}
