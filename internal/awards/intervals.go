package awards

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Interval records the gap between two consecutive wins for one
// producer. Years is always strictly positive; NewInterval refuses to
// construct anything else.
type Interval struct {
	Producer     string
	Years        int
	PreviousWin  int
	FollowingWin int
}

// NewInterval builds an interval between two wins. The second return
// value is false when the gap is not strictly positive; callers drop
// such pairs instead of surfacing an error.
func NewInterval(producer string, previous, following int) (Interval, bool) {
	gap := following - previous
	if gap <= 0 {
		return Interval{}, false
	}
	return Interval{
		Producer:     producer,
		Years:        gap,
		PreviousWin:  previous,
		FollowingWin: following,
	}, true
}

// Intervals expands grouped win years into one record per adjacent pair
// of each producer's sorted year sequence. "Consecutive" means the next
// win chronologically for that producer, not adjacent calendar years.
// Producers with fewer than two years are skipped. Output is ordered by
// collated producer name so repeated runs over the same input yield
// identical slices despite map iteration order.
func Intervals(grouped map[string][]int) []Interval {
	if len(grouped) == 0 {
		return nil
	}

	producers := make([]string, 0, len(grouped))
	for producer := range grouped {
		producers = append(producers, producer)
	}
	collate.New(language.English).SortStrings(producers)

	var records []Interval
	for _, producer := range producers {
		records = append(records, producerIntervals(producer, grouped[producer])...)
	}
	return records
}

func producerIntervals(producer string, years []int) []Interval {
	if len(years) < 2 {
		return nil
	}
	records := make([]Interval, 0, len(years)-1)
	for i := 1; i < len(years); i++ {
		previous, following := years[i-1], years[i]
		if previous <= 0 || following <= 0 {
			// An unusable year breaks the adjacency chain. The pairs on
			// either side of it are discarded, never re-joined.
			continue
		}
		record, ok := NewInterval(producer, previous, following)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}
