package api

import (
	"context"

	"razzie/internal/awards"
	"razzie/internal/movie"
)

// WinnerSource supplies the winning records the interval engine consumes.
type WinnerSource interface {
	Winners(ctx context.Context) ([]*movie.Movie, error)
}

// AwardsService computes producer win interval statistics.
type AwardsService struct {
	store WinnerSource
}

// NewAwardsService constructs an AwardsService around the provided source.
func NewAwardsService(store WinnerSource) *AwardsService {
	if store == nil {
		return nil
	}
	return &AwardsService{store: store}
}

// Intervals runs the full pipeline: winners are grouped per producer,
// expanded into consecutive-win intervals, and reduced to the records
// tied at the global minimum and maximum gap. The response is always
// well-formed; an empty dataset produces empty min and max slices.
func (s *AwardsService) Intervals(ctx context.Context) (IntervalsResponse, error) {
	winners, err := s.store.Winners(ctx)
	if err != nil {
		return IntervalsResponse{}, err
	}
	selection := awards.SelectMinMax(awards.Intervals(awards.GroupWinYears(winners)))
	return FromSelection(selection), nil
}
