package rollbook

import (
	"fmt"
	"time"
)

// monthCodes are the standard single-letter futures month codes, F for
// January through Z for December.
var monthCodes = [12]byte{'F', 'G', 'H', 'J', 'K', 'M', 'N', 'Q', 'U', 'V', 'X', 'Z'}

// MonthCode returns the futures month code for a month (e.g. March -> 'H').
func MonthCode(month time.Month) (byte, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("invalid month %d", month)
	}
	return monthCodes[month-1], nil
}

// ContractSymbol builds a standard contract label from an instrument
// symbol, a month and a year, using the month code followed by the year's
// last two digits, zero-padded.
//
//	ContractSymbol("ES", time.March, 2025) -> "ESH25"
//	ContractSymbol("MES", time.June, 2026) -> "MESM26"
func ContractSymbol(symbol string, month time.Month, year int) (string, error) {
	code, err := MonthCode(month)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%c%02d", symbol, code, year%100), nil
}

// exchangeToYahooSuffix maps catalog exchange names to the Yahoo Finance
// suffix used for a specific contract month's ticker.
var exchangeToYahooSuffix = map[string]string{
	"CME":   "CME",
	"CBOT":  "CBT",
	"NYMEX": "NYM",
	"COMEX": "CMX",
	"ICE":   "NYB",
	"CFE":   "CFE",
}

// YahooContractTicker builds the Yahoo Finance ticker for a specific
// contract month of a catalog instrument.
//
//	YahooContractTicker("ES", time.March, 2026) -> "ESH26.CME"
//	YahooContractTicker("ZB", time.June, 2026) -> "ZBM26.CBT"
func YahooContractTicker(symbol string, month time.Month, year int) (string, error) {
	inst, ok := GetInstrument(symbol)
	if !ok {
		return "", fmt.Errorf("unknown instrument %q", symbol)
	}
	suffix, ok := exchangeToYahooSuffix[inst.Exchange]
	if !ok {
		return "", fmt.Errorf("no Yahoo suffix for exchange %q", inst.Exchange)
	}
	label, err := ContractSymbol(inst.Symbol, month, year)
	if err != nil {
		return "", err
	}
	return label + "." + suffix, nil
}
