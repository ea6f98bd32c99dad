package awards_test

import (
	"reflect"
	"testing"

	"razzie/internal/awards"
	"razzie/internal/movie"
)

func interval(producer string, previous, following int) awards.Interval {
	record, ok := awards.NewInterval(producer, previous, following)
	if !ok {
		panic("bad test fixture")
	}
	return record
}

func TestSelectMinMaxEmptyInput(t *testing.T) {
	selection := awards.SelectMinMax(nil)
	if selection.Min == nil || selection.Max == nil {
		t.Fatal("selection slices must be non-nil")
	}
	if len(selection.Min) != 0 || len(selection.Max) != 0 {
		t.Fatalf("expected empty selection, got %+v", selection)
	}
}

func TestSelectMinMaxSingleIntervalIsBoth(t *testing.T) {
	only := interval("John Doe", 2010, 2015)
	selection := awards.SelectMinMax([]awards.Interval{only})
	if !reflect.DeepEqual(selection.Min, []awards.Interval{only}) {
		t.Fatalf("Min = %+v, want the single record", selection.Min)
	}
	if !reflect.DeepEqual(selection.Max, []awards.Interval{only}) {
		t.Fatalf("Max = %+v, want the single record", selection.Max)
	}
}

func TestSelectMinMaxDistinctExtremes(t *testing.T) {
	short := interval("P", 2010, 2015)
	long := interval("P", 2015, 2025)
	selection := awards.SelectMinMax([]awards.Interval{short, long})
	if !reflect.DeepEqual(selection.Min, []awards.Interval{short}) {
		t.Fatalf("Min = %+v, want %+v", selection.Min, short)
	}
	if !reflect.DeepEqual(selection.Max, []awards.Interval{long}) {
		t.Fatalf("Max = %+v, want %+v", selection.Max, long)
	}
}

func TestSelectMinMaxReportsAllTies(t *testing.T) {
	a := interval("Alice", 2000, 2005)
	b := interval("Bob", 2010, 2015)
	selection := awards.SelectMinMax([]awards.Interval{a, b})

	want := []awards.Interval{a, b}
	if !reflect.DeepEqual(selection.Min, want) {
		t.Fatalf("Min = %+v, want both tied records", selection.Min)
	}
	if !reflect.DeepEqual(selection.Max, want) {
		t.Fatalf("Max = %+v, want both tied records", selection.Max)
	}
}

func TestSelectMinMaxBounds(t *testing.T) {
	records := []awards.Interval{
		interval("A", 2000, 2001),
		interval("B", 2000, 2013),
		interval("C", 2005, 2010),
		interval("D", 1990, 1991),
	}
	selection := awards.SelectMinMax(records)
	if len(selection.Min) == 0 || len(selection.Max) == 0 {
		t.Fatal("expected non-empty selection")
	}
	minGap := selection.Min[0].Years
	maxGap := selection.Max[0].Years
	for _, record := range records {
		if record.Years < minGap || record.Years > maxGap {
			t.Fatalf("record %+v outside [%d, %d]", record, minGap, maxGap)
		}
	}
}

func TestPipelineScenario(t *testing.T) {
	movies := []*movie.Movie{
		{Year: 2010, Title: "M1", Studios: "S", Producers: "John Doe", Winner: true},
		{Year: 2015, Title: "M2", Studios: "S", Producers: "John Doe", Winner: true},
		{Year: 2020, Title: "M3", Studios: "S", Producers: "Jane Smith", Winner: true},
	}

	selection := awards.SelectMinMax(awards.Intervals(awards.GroupWinYears(movies)))
	want := awards.Interval{Producer: "John Doe", Years: 5, PreviousWin: 2010, FollowingWin: 2015}
	if !reflect.DeepEqual(selection.Min, []awards.Interval{want}) {
		t.Fatalf("Min = %+v, want %+v", selection.Min, want)
	}
	if !reflect.DeepEqual(selection.Max, []awards.Interval{want}) {
		t.Fatalf("Max = %+v, want %+v", selection.Max, want)
	}
}

func TestPipelineIdempotent(t *testing.T) {
	movies := []*movie.Movie{
		{Year: 1980, Title: "A", Producers: "P One, P Two", Winner: true},
		{Year: 1984, Title: "B", Producers: "P One", Winner: true},
		{Year: 1990, Title: "C", Producers: "P Two and P Three", Winner: true},
		{Year: 1999, Title: "D", Producers: "P Three", Winner: true},
	}

	first := awards.SelectMinMax(awards.Intervals(awards.GroupWinYears(movies)))
	second := awards.SelectMinMax(awards.Intervals(awards.GroupWinYears(movies)))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pipeline not idempotent: %+v vs %+v", first, second)
	}
}
