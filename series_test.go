package rollbook

import (
	"slices"
	"testing"

	"github.com/etnz/rollbook/date"
)

func TestCumulativeSeries(t *testing.T) {
	l := makeESLedger()
	points := slices.Collect(l.CumulativeSeries())

	// entry1, exit1/roll, entry2: the active entry has no exit event.
	if len(points) != 3 {
		t.Fatalf("series has %d points, want 3", len(points))
	}

	if points[0].Event != EventEntry || points[0].Cum != 0.0 {
		t.Errorf("point 0 = %+v, want an entry event at cum 0", points[0])
	}
	if points[0].On != date.MustParse("2025-01-15") {
		t.Errorf("point 0 date = %v, want 2025-01-15", points[0].On)
	}

	if points[1].Event != EventExit || !approx(points[1].Cum, 2500.0) {
		t.Errorf("point 1 = %+v, want an exit event at cum 2500", points[1])
	}
	if points[1].On != date.MustParse("2025-03-14") {
		t.Errorf("point 1 date = %v, want 2025-03-14", points[1].On)
	}

	// The running total only moves at exit events: the new entry restates it.
	if points[2].Event != EventEntry || !approx(points[2].Cum, 2500.0) {
		t.Errorf("point 2 = %+v, want an entry event at cum 2500", points[2])
	}
	if points[2].Contract != "ESM25" || points[2].Number != 2 {
		t.Errorf("point 2 = %+v, want contract ESM25 number 2", points[2])
	}
}

func TestCumulativeSeriesClosed(t *testing.T) {
	l := makeESLedger()
	l.Close(5100.0, date.MustParse("2025-06-13"))
	points := slices.Collect(l.CumulativeSeries())

	if len(points) != 4 {
		t.Fatalf("series has %d points, want 4", len(points))
	}
	last := points[len(points)-1]
	if last.Event != EventExit || !approx(last.Cum, 4500.0) {
		t.Errorf("last point = %+v, want an exit event at cum 4500", last)
	}
}

func TestCumulativeSeriesIsRestartable(t *testing.T) {
	l := makeESLedger()
	seq := l.CumulativeSeries()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("two passes over the same series differ:\n%v\n%v", first, second)
	}

	// An early break must not affect a later pass.
	for range seq {
		break
	}
	third := slices.Collect(seq)
	if !slices.Equal(first, third) {
		t.Errorf("series changed after an interrupted pass")
	}
}
