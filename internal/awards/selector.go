package awards

// Selection holds every interval tied at the globally smallest and
// largest gap. Both slices are non-nil so the JSON rendering of an
// empty selection is {"min":[],"max":[]} rather than null.
type Selection struct {
	Min []Interval
	Max []Interval
}

// SelectMinMax scans the interval records and returns all records tied
// at the minimum and maximum gap, in encounter order. Ties are never
// broken: every tied producer is reported. When all gaps are equal the
// same records appear in both slices. Empty input yields an empty
// selection; there is no failure mode.
func SelectMinMax(intervals []Interval) Selection {
	selection := Selection{Min: []Interval{}, Max: []Interval{}}
	if len(intervals) == 0 {
		return selection
	}

	minGap, maxGap := intervals[0].Years, intervals[0].Years
	for _, record := range intervals[1:] {
		if record.Years < minGap {
			minGap = record.Years
		}
		if record.Years > maxGap {
			maxGap = record.Years
		}
	}

	for _, record := range intervals {
		if record.Years == minGap {
			selection.Min = append(selection.Min, record)
		}
		if record.Years == maxGap {
			selection.Max = append(selection.Max, record)
		}
	}
	return selection
}
