package rollbook

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/rollbook/date"
)

// This file contains functions to access the Yahoo Finance chart API, the
// market data collaborator of the ledger. Fetches are best effort: an
// absent price is a normal outcome reported as ErrUnavailable, never a
// panic, and the ledger itself never observes a fetch. Responses are
// cached on disk with a daily expiry.

// ErrUnavailable reports that no price could be found for the requested
// ticker and date. It is a normal outcome (weekend, holiday, delisted or
// unknown contract), not a transport failure.
var ErrUnavailable = errors.New("price unavailable")

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d"

// chartDay converts a chart API timestamp to a Date.
func chartDay(ts int64) date.Date { return date.New(time.Unix(ts, 0).UTC().Date()) }

// fetchChart retrieves the raw daily chart payload for a ticker over a date window.
func fetchChart(ticker string, from, to date.Date) (any, error) {
	addr := fmt.Sprintf(chartURL, url.PathEscape(ticker), from.Unix(), to.Add(1).Unix())
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	return jobj, nil
}

// chartSeries extracts aligned (day, value) pairs from a chart payload
// using the given quote field ("close" or "volume"). Null samples are skipped.
func chartSeries(jobj any, field string) (days []date.Date, values []float64, err error) {
	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, nil, fmt.Errorf("no timestamps in chart payload: %w", err)
	}
	jvals, err := jsonpath.Get("$.chart.result[0].indicators.quote[0]."+field, jobj)
	if err != nil {
		return nil, nil, fmt.Errorf("no %q series in chart payload: %w", field, err)
	}
	ts, ok := jts.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("chart timestamps are not a list")
	}
	vals, ok := jvals.([]any)
	if !ok || len(vals) != len(ts) {
		return nil, nil, fmt.Errorf("chart %q series does not match timestamps", field)
	}
	for i, jt := range ts {
		t, ok := jt.(float64)
		if !ok {
			continue
		}
		v, ok := vals[i].(float64) // nulls decode to nil and are skipped.
		if !ok {
			continue
		}
		days = append(days, chartDay(int64(t)))
		values = append(values, v)
	}
	return days, values, nil
}

// closeOnOrBefore picks from a (day, close) series the close on the target
// day, or failing that the closest one before it, or failing that the last
// one at all. It reports ErrUnavailable on an empty series.
func closeOnOrBefore(days []date.Date, closes []float64, on date.Date) (float64, error) {
	if len(days) == 0 {
		return math.NaN(), ErrUnavailable
	}
	best := -1
	for i, day := range days {
		if day.After(on) {
			continue
		}
		if best < 0 || days[best].Before(day) || days[best] == day {
			best = i
		}
	}
	if best < 0 {
		// No sample at or before the target, fall back to the closest one at all.
		best = len(days) - 1
	}
	return closes[best], nil
}

// FetchClose fetches the closing price for a ticker on or near a target
// date. Yahoo has no data on weekends and holidays, so a window of 5 days
// before through 1 day after the target is scanned and the closest
// available close at or before the target is returned.
func FetchClose(ticker string, on date.Date) (float64, error) {
	jobj, err := fetchChart(ticker, on.Add(-5), on.Add(1))
	if err != nil {
		return math.NaN(), err
	}
	days, closes, err := chartSeries(jobj, "close")
	if err != nil {
		return math.NaN(), fmt.Errorf("%q: %w", ticker, ErrUnavailable)
	}
	return closeOnOrBefore(days, closes, on)
}

// FetchInstrumentClose fetches the close of the continuous contract for a
// catalog instrument symbol on a given date.
func FetchInstrumentClose(symbol string, on date.Date) (float64, error) {
	inst, ok := GetInstrument(symbol)
	if !ok {
		return math.NaN(), fmt.Errorf("unknown instrument %q: %w", symbol, ErrUnavailable)
	}
	return FetchClose(inst.YahooTicker, on)
}

// RollVolume compares traded volume between the front and back month
// contracts. The liquidity crossover, when the ratio exceeds 1, is the
// usual signal that it is time to roll.
type RollVolume struct {
	FrontTicker string
	BackTicker  string
	Days        []date.Date // days where both contracts traded.
	FrontVolume []float64
	BackVolume  []float64
	LatestFront int64
	LatestBack  int64
	Ratio       float64 // back / front on the latest common day.
}

// FetchRollVolume fetches one month of volume for two contract months of an
// instrument and aligns them on their common trading days.
func FetchRollVolume(symbol string, frontMonth time.Month, frontYear int, backMonth time.Month, backYear int) (*RollVolume, error) {
	frontTicker, err := YahooContractTicker(symbol, frontMonth, frontYear)
	if err != nil {
		return nil, err
	}
	backTicker, err := YahooContractTicker(symbol, backMonth, backYear)
	if err != nil {
		return nil, err
	}

	to := date.Today()
	from := to.Add(-31)

	frontDays, frontVols, err := fetchVolumes(frontTicker, from, to)
	if err != nil {
		return nil, err
	}
	backDays, backVols, err := fetchVolumes(backTicker, from, to)
	if err != nil {
		return nil, err
	}

	rv := &RollVolume{FrontTicker: frontTicker, BackTicker: backTicker}
	for i, day := range frontDays {
		j := slices.Index(backDays, day)
		if j < 0 {
			continue
		}
		rv.Days = append(rv.Days, day)
		rv.FrontVolume = append(rv.FrontVolume, frontVols[i])
		rv.BackVolume = append(rv.BackVolume, backVols[j])
	}
	if len(rv.Days) == 0 {
		return nil, fmt.Errorf("no common trading days for %q and %q: %w", frontTicker, backTicker, ErrUnavailable)
	}

	last := len(rv.Days) - 1
	rv.LatestFront = int64(rv.FrontVolume[last])
	rv.LatestBack = int64(rv.BackVolume[last])
	if rv.FrontVolume[last] > 0 {
		rv.Ratio = rv.BackVolume[last] / rv.FrontVolume[last]
	} else {
		rv.Ratio = math.Inf(1)
	}
	return rv, nil
}

func fetchVolumes(ticker string, from, to date.Date) ([]date.Date, []float64, error) {
	jobj, err := fetchChart(ticker, from, to)
	if err != nil {
		return nil, nil, err
	}
	days, vols, err := chartSeries(jobj, "volume")
	if err != nil {
		return nil, nil, fmt.Errorf("%q: %w", ticker, ErrUnavailable)
	}
	return days, vols, nil
}
