package awards

import (
	"sort"

	"razzie/internal/movie"
)

// GroupWinYears collects award years per producer across the winning
// records in movies. Nil entries and non-winners are skipped, producer
// credits are expanded via SplitProducers, and each producer's years
// are deduplicated and sorted ascending. Records without a usable year
// contribute nothing, so one bad record never poisons the aggregate.
func GroupWinYears(movies []*movie.Movie) map[string][]int {
	seen := make(map[string]map[int]struct{})
	for _, m := range movies {
		if m == nil || !m.Winner {
			continue
		}
		if m.Year <= 0 {
			continue
		}
		for _, producer := range SplitProducers(m.Producers) {
			years := seen[producer]
			if years == nil {
				years = make(map[int]struct{})
				seen[producer] = years
			}
			years[m.Year] = struct{}{}
		}
	}

	grouped := make(map[string][]int, len(seen))
	for producer, years := range seen {
		sorted := make([]int, 0, len(years))
		for year := range years {
			sorted = append(sorted, year)
		}
		sort.Ints(sorted)
		grouped[producer] = sorted
	}
	return grouped
}
