package api

import (
	"time"

	"razzie/internal/awards"
	"razzie/internal/movie"
)

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// FromMovie converts a stored record into its transport form.
func FromMovie(m *movie.Movie) MovieItem {
	if m == nil {
		return MovieItem{}
	}
	return MovieItem{
		ID:        m.ID,
		Year:      m.Year,
		Title:     m.Title,
		Studios:   m.Studios,
		Producers: m.Producers,
		Winner:    m.Winner,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

// FromMovies converts a slice of stored records, skipping nil entries.
func FromMovies(movies []*movie.Movie) []MovieItem {
	items := make([]MovieItem, 0, len(movies))
	for _, m := range movies {
		if m == nil {
			continue
		}
		items = append(items, FromMovie(m))
	}
	return items
}

// FromInterval converts one interval record into its wire form.
func FromInterval(record awards.Interval) IntervalEntry {
	return IntervalEntry{
		Producer:     record.Producer,
		Interval:     record.Years,
		PreviousWin:  record.PreviousWin,
		FollowingWin: record.FollowingWin,
	}
}

// FromSelection converts an interval selection into the response
// payload. Both slices are always non-nil.
func FromSelection(selection awards.Selection) IntervalsResponse {
	response := IntervalsResponse{
		Min: make([]IntervalEntry, 0, len(selection.Min)),
		Max: make([]IntervalEntry, 0, len(selection.Max)),
	}
	for _, record := range selection.Min {
		response.Min = append(response.Min, FromInterval(record))
	}
	for _, record := range selection.Max {
		response.Max = append(response.Max, FromInterval(record))
	}
	return response
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
