package rollbook

import (
	"iter"
	"strings"
)

// Instrument describes one futures product: its contract multiplier in
// dollars per price point, the Yahoo Finance continuous-contract ticker
// used for price lookups, and where it trades.
type Instrument struct {
	Symbol      string
	Name        string
	Multiplier  float64
	YahooTicker string
	Exchange    string
	Category    string
}

// instruments is the catalog, pure data built once at init and never
// mutated afterwards, indexed by symbol.
var instruments = map[string]Instrument{}

// instrumentOrder preserves the declaration order for listings.
var instrumentOrder []string

func reg(symbol, name string, multiplier float64, yahoo, exchange, category string) {
	instruments[symbol] = Instrument{symbol, name, multiplier, yahoo, exchange, category}
	instrumentOrder = append(instrumentOrder, symbol)
}

func init() {
	// Equity Index
	reg("ES", "E-mini S&P 500", 50.0, "ES=F", "CME", "Equity Index")
	reg("NQ", "E-mini Nasdaq 100", 20.0, "NQ=F", "CME", "Equity Index")
	reg("YM", "E-mini Dow ($5)", 5.0, "YM=F", "CBOT", "Equity Index")
	reg("RTY", "E-mini Russell 2000", 50.0, "RTY=F", "CME", "Equity Index")
	reg("EMD", "E-mini S&P MidCap 400", 100.0, "EMD=F", "CME", "Equity Index")

	// Micro Equity Index
	reg("MES", "Micro E-mini S&P 500", 5.0, "MES=F", "CME", "Micro Equity Index")
	reg("MNQ", "Micro E-mini Nasdaq 100", 2.0, "MNQ=F", "CME", "Micro Equity Index")
	reg("MYM", "Micro E-mini Dow ($0.50)", 0.5, "MYM=F", "CBOT", "Micro Equity Index")
	reg("M2K", "Micro E-mini Russell 2000", 5.0, "M2K=F", "CME", "Micro Equity Index")

	// Energy
	reg("CL", "Crude Oil (WTI)", 1000.0, "CL=F", "NYMEX", "Energy")
	reg("NG", "Natural Gas", 10000.0, "NG=F", "NYMEX", "Energy")
	reg("RB", "RBOB Gasoline", 42000.0, "RB=F", "NYMEX", "Energy")
	reg("HO", "Heating Oil", 42000.0, "HO=F", "NYMEX", "Energy")

	// Micro Energy
	reg("MCL", "Micro WTI Crude Oil", 100.0, "MCL=F", "NYMEX", "Micro Energy")
	reg("MNG", "Micro Natural Gas", 1000.0, "MNG=F", "NYMEX", "Micro Energy")

	// Metals
	reg("GC", "Gold", 100.0, "GC=F", "COMEX", "Metals")
	reg("SI", "Silver", 5000.0, "SI=F", "COMEX", "Metals")
	reg("HG", "Copper", 25000.0, "HG=F", "COMEX", "Metals")
	reg("PL", "Platinum", 50.0, "PL=F", "NYMEX", "Metals")
	reg("PA", "Palladium", 100.0, "PA=F", "NYMEX", "Metals")

	// Micro Metals
	reg("MGC", "Micro Gold", 10.0, "MGC=F", "COMEX", "Micro Metals")
	reg("SIL", "Micro Silver", 1000.0, "SIL=F", "COMEX", "Micro Metals")

	// Treasuries
	reg("ZB", "30-Year Treasury Bond", 1000.0, "ZB=F", "CBOT", "Treasuries")
	reg("ZN", "10-Year Treasury Note", 1000.0, "ZN=F", "CBOT", "Treasuries")
	reg("ZF", "5-Year Treasury Note", 1000.0, "ZF=F", "CBOT", "Treasuries")
	reg("ZT", "2-Year Treasury Note", 2000.0, "ZT=F", "CBOT", "Treasuries")
	reg("UB", "Ultra Treasury Bond", 1000.0, "UB=F", "CBOT", "Treasuries")

	// Currencies
	reg("6E", "Euro FX", 125000.0, "6E=F", "CME", "Currencies")
	reg("6J", "Japanese Yen", 12500000.0, "6J=F", "CME", "Currencies")
	reg("6B", "British Pound", 62500.0, "6B=F", "CME", "Currencies")
	reg("6A", "Australian Dollar", 100000.0, "6A=F", "CME", "Currencies")
	reg("6C", "Canadian Dollar", 100000.0, "6C=F", "CME", "Currencies")
	reg("6S", "Swiss Franc", 125000.0, "6S=F", "CME", "Currencies")

	// Micro Currencies
	reg("M6E", "Micro Euro FX", 12500.0, "M6E=F", "CME", "Micro Currencies")
	reg("M6A", "Micro AUD/USD", 10000.0, "M6A=F", "CME", "Micro Currencies")

	// Grains
	reg("ZC", "Corn", 50.0, "ZC=F", "CBOT", "Grains")
	reg("ZS", "Soybeans", 50.0, "ZS=F", "CBOT", "Grains")
	reg("ZW", "Wheat", 50.0, "ZW=F", "CBOT", "Grains")
	reg("ZM", "Soybean Meal", 100.0, "ZM=F", "CBOT", "Grains")
	reg("ZL", "Soybean Oil", 600.0, "ZL=F", "CBOT", "Grains")

	// Softs / Livestock
	reg("KC", "Coffee", 37500.0, "KC=F", "ICE", "Softs")
	reg("SB", "Sugar #11", 1120.0, "SB=F", "ICE", "Softs")
	reg("CT", "Cotton", 50000.0, "CT=F", "ICE", "Softs")
	reg("CC", "Cocoa", 10.0, "CC=F", "ICE", "Softs")
	reg("LE", "Live Cattle", 400.0, "LE=F", "CME", "Livestock")
	reg("HE", "Lean Hogs", 400.0, "HE=F", "CME", "Livestock")

	// Volatility
	reg("VX", "VIX Futures", 1000.0, "VX=F", "CFE", "Volatility")
}

// GetInstrument returns the catalog entry for a symbol, case-insensitively.
func GetInstrument(symbol string) (Instrument, bool) {
	inst, ok := instruments[strings.ToUpper(symbol)]
	return inst, ok
}

// Instruments iterates over the catalog in its declaration order, which
// groups instruments by category.
func Instruments() iter.Seq[Instrument] {
	return func(yield func(Instrument) bool) {
		for _, sym := range instrumentOrder {
			if !yield(instruments[sym]) {
				return
			}
		}
	}
}
