package rollbook

import "testing"

func TestGetInstrument(t *testing.T) {
	inst, ok := GetInstrument("ES")
	if !ok {
		t.Fatalf("GetInstrument(ES) not found")
	}
	if inst.Multiplier != 50.0 || inst.Exchange != "CME" || inst.YahooTicker != "ES=F" {
		t.Errorf("ES = %+v, want $50/pt on CME with ticker ES=F", inst)
	}

	// Lookup is case-insensitive.
	lower, ok := GetInstrument("es")
	if !ok || lower != inst {
		t.Errorf("GetInstrument(es) = %+v, %v, want the ES entry", lower, ok)
	}

	if _, ok := GetInstrument("NOPE"); ok {
		t.Errorf("GetInstrument(NOPE) found an entry")
	}
}

func TestInstrumentsCatalog(t *testing.T) {
	count := 0
	seen := make(map[string]bool)
	var prevCategory string
	categoryBlocks := 0
	for inst := range Instruments() {
		count++
		if seen[inst.Symbol] {
			t.Errorf("symbol %q listed twice", inst.Symbol)
		}
		seen[inst.Symbol] = true
		if inst.Multiplier <= 0 {
			t.Errorf("%s has non-positive multiplier %v", inst.Symbol, inst.Multiplier)
		}
		if inst.Category != prevCategory {
			prevCategory = inst.Category
			categoryBlocks++
		}
	}
	if count != 47 {
		t.Errorf("catalog has %d instruments, want 47", count)
	}
	// Declaration order keeps each category contiguous.
	if categoryBlocks != 13 {
		t.Errorf("catalog has %d category blocks, want 13", categoryBlocks)
	}
}

func TestCatalogMultipliers(t *testing.T) {
	for sym, want := range map[string]float64{
		"NQ": 20.0, "CL": 1000.0, "GC": 100.0, "MES": 5.0, "6J": 12500000.0, "VX": 1000.0,
	} {
		inst, ok := GetInstrument(sym)
		if !ok {
			t.Errorf("GetInstrument(%s) not found", sym)
			continue
		}
		if inst.Multiplier != want {
			t.Errorf("%s multiplier = %v, want %v", sym, inst.Multiplier, want)
		}
	}
}
