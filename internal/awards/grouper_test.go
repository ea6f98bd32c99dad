package awards_test

import (
	"reflect"
	"sort"
	"testing"

	"razzie/internal/awards"
	"razzie/internal/movie"
)

func win(year int, producers string) *movie.Movie {
	return &movie.Movie{Year: year, Title: "T", Studios: "S", Producers: producers, Winner: true}
}

func TestGroupWinYears(t *testing.T) {
	movies := []*movie.Movie{
		win(2010, "John Doe"),
		win(2015, "John Doe"),
		win(2020, "Jane Smith"),
	}
	got := awards.GroupWinYears(movies)
	want := map[string][]int{
		"John Doe":   {2010, 2015},
		"Jane Smith": {2020},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GroupWinYears = %v, want %v", got, want)
	}
}

func TestGroupWinYearsSharedCredit(t *testing.T) {
	movies := []*movie.Movie{
		win(2010, "John Doe, Jane Smith"),
		win(2015, "John Doe"),
	}
	got := awards.GroupWinYears(movies)
	if !reflect.DeepEqual(got["John Doe"], []int{2010, 2015}) {
		t.Fatalf("John Doe years = %v, want [2010 2015]", got["John Doe"])
	}
	if !reflect.DeepEqual(got["Jane Smith"], []int{2010}) {
		t.Fatalf("Jane Smith years = %v, want [2010]", got["Jane Smith"])
	}
}

func TestGroupWinYearsSkipsNonWinnersAndNils(t *testing.T) {
	movies := []*movie.Movie{
		nil,
		{Year: 2010, Title: "Nominee", Producers: "John Doe", Winner: false},
		win(2012, "John Doe"),
		nil,
	}
	got := awards.GroupWinYears(movies)
	if !reflect.DeepEqual(got["John Doe"], []int{2012}) {
		t.Fatalf("John Doe years = %v, want [2012]", got["John Doe"])
	}
}

func TestGroupWinYearsDeduplicatesSameYear(t *testing.T) {
	movies := []*movie.Movie{
		win(2011, "John Doe"),
		win(2011, "John Doe"),
	}
	got := awards.GroupWinYears(movies)
	if !reflect.DeepEqual(got["John Doe"], []int{2011}) {
		t.Fatalf("John Doe years = %v, want [2011]", got["John Doe"])
	}
}

func TestGroupWinYearsIgnoresUnusableRecords(t *testing.T) {
	movies := []*movie.Movie{
		win(0, "John Doe"),
		win(2010, ""),
		win(2010, "   "),
	}
	got := awards.GroupWinYears(movies)
	if len(got) != 0 {
		t.Fatalf("expected empty grouping, got %v", got)
	}
}

func TestGroupWinYearsEmptyInput(t *testing.T) {
	if got := awards.GroupWinYears(nil); len(got) != 0 {
		t.Fatalf("GroupWinYears(nil) = %v, want empty", got)
	}
	if got := awards.GroupWinYears([]*movie.Movie{}); len(got) != 0 {
		t.Fatalf("GroupWinYears(empty) = %v, want empty", got)
	}
}

func TestGroupWinYearsAlwaysSortedAndDistinct(t *testing.T) {
	movies := []*movie.Movie{
		win(2019, "P"),
		win(1985, "P"),
		win(2001, "P"),
		win(1985, "P"),
		win(1980, "P"),
	}
	got := awards.GroupWinYears(movies)
	years := got["P"]
	if !sort.IntsAreSorted(years) {
		t.Fatalf("years not sorted: %v", years)
	}
	for i := 1; i < len(years); i++ {
		if years[i] == years[i-1] {
			t.Fatalf("duplicate year in %v", years)
		}
	}
	if !reflect.DeepEqual(years, []int{1980, 1985, 2001, 2019}) {
		t.Fatalf("years = %v, want [1980 1985 2001 2019]", years)
	}
}
