package awards_test

import (
	"reflect"
	"testing"

	"razzie/internal/awards"
)

func TestNewInterval(t *testing.T) {
	record, ok := awards.NewInterval("John Doe", 2010, 2015)
	if !ok {
		t.Fatal("expected interval to be constructed")
	}
	want := awards.Interval{Producer: "John Doe", Years: 5, PreviousWin: 2010, FollowingWin: 2015}
	if record != want {
		t.Fatalf("NewInterval = %+v, want %+v", record, want)
	}

	if _, ok := awards.NewInterval("John Doe", 2015, 2015); ok {
		t.Fatal("zero gap must be rejected")
	}
	if _, ok := awards.NewInterval("John Doe", 2015, 2010); ok {
		t.Fatal("negative gap must be rejected")
	}
}

func TestIntervalsAdjacentPairs(t *testing.T) {
	got := awards.Intervals(map[string][]int{"P": {2010, 2015, 2025}})
	want := []awards.Interval{
		{Producer: "P", Years: 5, PreviousWin: 2010, FollowingWin: 2015},
		{Producer: "P", Years: 10, PreviousWin: 2015, FollowingWin: 2025},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Intervals = %+v, want %+v", got, want)
	}
}

func TestIntervalsSkipsSingleWinProducers(t *testing.T) {
	got := awards.Intervals(map[string][]int{
		"One": {2010},
		"Two": {2010, 2012},
	})
	if len(got) != 1 || got[0].Producer != "Two" {
		t.Fatalf("Intervals = %+v, want one record for Two", got)
	}
}

func TestIntervalsCountIsYearsMinusOne(t *testing.T) {
	cases := []struct {
		years []int
		want  int
	}{
		{[]int{2000}, 0},
		{[]int{2000, 2001}, 1},
		{[]int{2000, 2004, 2009, 2020}, 3},
	}
	for _, tc := range cases {
		got := awards.Intervals(map[string][]int{"P": tc.years})
		if len(got) != tc.want {
			t.Fatalf("years %v: %d records, want %d", tc.years, len(got), tc.want)
		}
	}
}

func TestIntervalsUnusableYearBreaksChain(t *testing.T) {
	// The zero entry poisons both pairs it touches; 2000/2010 must not
	// be joined across it.
	got := awards.Intervals(map[string][]int{"P": {2000, 0, 2010, 2012}})
	want := []awards.Interval{
		{Producer: "P", Years: 2, PreviousWin: 2010, FollowingWin: 2012},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Intervals = %+v, want %+v", got, want)
	}
}

func TestIntervalsDropsNonPositiveGaps(t *testing.T) {
	// A dedup failure upstream must be filtered, not surfaced.
	got := awards.Intervals(map[string][]int{"P": {2010, 2010, 2013}})
	want := []awards.Interval{
		{Producer: "P", Years: 3, PreviousWin: 2010, FollowingWin: 2013},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Intervals = %+v, want %+v", got, want)
	}
}

func TestIntervalsDeterministicOrder(t *testing.T) {
	grouped := map[string][]int{
		"Charlie": {2000, 2002},
		"alice":   {1990, 1993},
		"Bob":     {1980, 1981},
	}
	first := awards.Intervals(grouped)
	for i := 0; i < 10; i++ {
		if again := awards.Intervals(grouped); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d produced different order: %+v vs %+v", i, again, first)
		}
	}
}

func TestIntervalsEmptyInput(t *testing.T) {
	if got := awards.Intervals(nil); got != nil {
		t.Fatalf("Intervals(nil) = %+v, want nil", got)
	}
	if got := awards.Intervals(map[string][]int{}); got != nil {
		t.Fatalf("Intervals(empty) = %+v, want nil", got)
	}
}
