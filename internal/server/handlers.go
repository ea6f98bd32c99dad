package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"razzie/internal/api"
	"razzie/internal/movie"
)

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listMovies(w, r)
	case http.MethodPost:
		s.createMovie(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	response, err := s.movies.List(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) createMovie(w http.ResponseWriter, r *http.Request) {
	var req api.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := s.movies.Create(r.Context(), req, time.Now().UTC().Year())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, api.MovieResponse{Movie: item})
}

func (s *Server) handleMovieByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/movies/")
	if idStr == "" || strings.Contains(idStr, "/") {
		s.writeError(w, http.StatusNotFound, "movie not found")
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := s.movies.Get(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.MovieResponse{Movie: item})
	case http.MethodPut:
		var req api.MovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item, err := s.movies.Update(r.Context(), id, req, time.Now().UTC().Year())
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.MovieResponse{Movie: item})
	case http.MethodDelete:
		if err := s.movies.Delete(r.Context(), id); err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusNoContent, nil)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleIntervals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	response, err := s.awards.Intervals(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := s.store.Ping(r.Context()); err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	count, err := s.store.Count(r.Context(), movie.Filter{})
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Movies: count})
}

func filterFromQuery(r *http.Request) (movie.Filter, error) {
	query := r.URL.Query()
	var filter movie.Filter

	if value := strings.TrimSpace(query.Get("page")); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil || page < 1 {
			return filter, &api.ValidationError{Reason: "page must be a positive integer"}
		}
		filter.Page = page
	}
	if value := strings.TrimSpace(query.Get("pageSize")); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil || size < 1 || size > movie.MaxPageSize {
			return filter, &api.ValidationError{
				Reason: fmt.Sprintf("pageSize must be between 1 and %d", movie.MaxPageSize),
			}
		}
		filter.PageSize = size
	}
	if value := strings.TrimSpace(query.Get("year")); value != "" {
		year, err := strconv.Atoi(value)
		if err != nil {
			return filter, &api.ValidationError{Reason: "year must be an integer"}
		}
		filter.Year = year
	}
	if value := strings.TrimSpace(query.Get("winner")); value != "" {
		winner, err := strconv.ParseBool(value)
		if err != nil {
			return filter, &api.ValidationError{Reason: "winner must be true or false"}
		}
		filter.Winner = &winner
	}
	filter.Title = strings.TrimSpace(query.Get("title"))

	if value := strings.TrimSpace(query.Get("sort")); value != "" {
		field := movie.SortField(strings.ToLower(value))
		switch field {
		case movie.SortByID, movie.SortByYear, movie.SortByTitle:
			filter.Sort = field
		default:
			return filter, &api.ValidationError{Reason: "sort must be one of id, year, title"}
		}
	}
	switch order := strings.ToLower(strings.TrimSpace(query.Get("order"))); order {
	case "", "asc":
	case "desc":
		filter.Descending = true
	default:
		return filter, &api.ValidationError{Reason: "order must be asc or desc"}
	}

	return filter, nil
}
