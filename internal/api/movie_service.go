package api

import (
	"context"
	"strings"

	"razzie/internal/movie"
)

// MovieStore abstracts the persistence operations the movie service needs.
type MovieStore interface {
	Insert(ctx context.Context, m *movie.Movie) (*movie.Movie, error)
	GetByID(ctx context.Context, id int64) (*movie.Movie, error)
	Update(ctx context.Context, m *movie.Movie) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f movie.Filter) ([]*movie.Movie, error)
	Count(ctx context.Context, f movie.Filter) (int, error)
}

// MovieService exposes record CRUD returning API DTOs.
type MovieService struct {
	store MovieStore
}

// NewMovieService constructs a MovieService around the provided store.
func NewMovieService(store MovieStore) *MovieService {
	if store == nil {
		return nil
	}
	return &MovieService{store: store}
}

// List returns a page of records with pagination metadata. The filter
// is normalized up front so the metadata describes the same window the
// store serves.
func (s *MovieService) List(ctx context.Context, f movie.Filter) (MovieListResponse, error) {
	f = f.Normalized()
	movies, err := s.store.List(ctx, f)
	if err != nil {
		return MovieListResponse{}, err
	}
	total, err := s.store.Count(ctx, f)
	if err != nil {
		return MovieListResponse{}, err
	}

	return MovieListResponse{
		Items: FromMovies(movies),
		Pagination: Pagination{
			Page:       f.Page,
			PageSize:   f.PageSize,
			Total:      total,
			TotalPages: (total + f.PageSize - 1) / f.PageSize,
		},
	}, nil
}

// Create validates and persists a new record. referenceYear caps the
// acceptable film year and is passed explicitly by the caller.
func (s *MovieService) Create(ctx context.Context, req MovieRequest, referenceYear int) (MovieItem, error) {
	record := recordFromRequest(req)
	if err := record.Validate(referenceYear); err != nil {
		return MovieItem{}, &ValidationError{Reason: err.Error()}
	}
	created, err := s.store.Insert(ctx, record)
	if err != nil {
		return MovieItem{}, err
	}
	return FromMovie(created), nil
}

// Get fetches one record.
func (s *MovieService) Get(ctx context.Context, id int64) (MovieItem, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return MovieItem{}, err
	}
	if m == nil {
		return MovieItem{}, ErrNotFound
	}
	return FromMovie(m), nil
}

// Update replaces the writable fields of an existing record.
func (s *MovieService) Update(ctx context.Context, id int64, req MovieRequest, referenceYear int) (MovieItem, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return MovieItem{}, err
	}
	if existing == nil {
		return MovieItem{}, ErrNotFound
	}

	record := recordFromRequest(req)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	if err := record.Validate(referenceYear); err != nil {
		return MovieItem{}, &ValidationError{Reason: err.Error()}
	}
	if err := s.store.Update(ctx, record); err != nil {
		return MovieItem{}, err
	}
	updated, err := s.store.GetByID(ctx, id)
	if err != nil {
		return MovieItem{}, err
	}
	return FromMovie(updated), nil
}

// Delete removes a record.
func (s *MovieService) Delete(ctx context.Context, id int64) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func recordFromRequest(req MovieRequest) *movie.Movie {
	return &movie.Movie{
		Year:      req.Year,
		Title:     strings.TrimSpace(req.Title),
		Studios:   strings.TrimSpace(req.Studios),
		Producers: strings.TrimSpace(req.Producers),
		Winner:    req.Winner,
	}
}
