package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"razzie/internal/api"
	"razzie/internal/logging"
	"razzie/internal/movie"
	"razzie/internal/server"
	"razzie/internal/testsupport"
)

func newTestServer(t *testing.T) (*httptest.Server, *movie.Store) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	srv, err := server.New(cfg, store, logging.NewNop())
	if err != nil {
		t.Fatalf("server.New failed: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func postMovie(t *testing.T, ts *httptest.Server, req api.MovieRequest) api.MovieItem {
	t.Helper()

	body, _ := json.Marshal(req)
	resp, err := http.Post(ts.URL+"/api/movies", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/movies failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /api/movies status = %d, want 201", resp.StatusCode)
	}
	var created api.MovieResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return created.Movie
}

func TestCreateAndGetMovie(t *testing.T) {
	ts, _ := newTestServer(t)

	created := postMovie(t, ts, api.MovieRequest{
		Year: 1990, Title: "Ghosts Can't Do It", Studios: "Triumph", Producers: "Bo Derek", Winner: true,
	})
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	resp, err := http.Get(fmt.Sprintf("%s/api/movies/%d", ts.URL, created.ID))
	if err != nil {
		t.Fatalf("GET movie failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET movie status = %d, want 200", resp.StatusCode)
	}
	var fetched api.MovieResponse
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Movie.Title != "Ghosts Can't Do It" || !fetched.Movie.Winner {
		t.Fatalf("unexpected movie: %+v", fetched.Movie)
	}
}

func TestCreateMovieValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	body, _ := json.Marshal(api.MovieRequest{Year: 1800, Title: "Too Old"})
	resp, err := http.Post(ts.URL+"/api/movies", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetMissingMovie(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/movies/999")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListMoviesPagination(t *testing.T) {
	ts, _ := newTestServer(t)

	for i := 0; i < 5; i++ {
		postMovie(t, ts, api.MovieRequest{Year: 1980 + i, Title: fmt.Sprintf("Movie %d", i)})
	}

	resp, err := http.Get(ts.URL + "/api/movies?page=2&pageSize=2&sort=year")
	if err != nil {
		t.Fatalf("GET list failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var list api.MovieListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 2 || list.Items[0].Year != 1982 {
		t.Fatalf("unexpected page: %+v", list.Items)
	}
	if list.Pagination.Total != 5 || list.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination: %+v", list.Pagination)
	}
}

func TestListMoviesDefaultPageSize(t *testing.T) {
	ts, store := newTestServer(t)

	ctx := context.Background()
	for i := 0; i < 120; i++ {
		if _, err := store.Insert(ctx, &movie.Movie{Year: 1980, Title: fmt.Sprintf("Movie %03d", i)}); err != nil {
			t.Fatalf("seed insert %d failed: %v", i, err)
		}
	}

	resp, err := http.Get(ts.URL + "/api/movies?page=3")
	if err != nil {
		t.Fatalf("GET list failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var list api.MovieListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	// The last partial page: metadata must describe the defaulted page
	// size the store served, not the number of rows returned.
	if len(list.Items) != 20 {
		t.Fatalf("page 3 of 120 holds %d items, want 20", len(list.Items))
	}
	want := api.Pagination{Page: 3, PageSize: 50, Total: 120, TotalPages: 3}
	if list.Pagination != want {
		t.Fatalf("pagination = %+v, want %+v", list.Pagination, want)
	}
}

func TestListMoviesRejectsBadQuery(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, query := range []string{"?page=zero", "?winner=maybe", "?pageSize=1000", "?sort=studio", "?order=sideways"} {
		resp, err := http.Get(ts.URL + "/api/movies" + query)
		if err != nil {
			t.Fatalf("GET %s failed: %v", query, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("GET %s status = %d, want 400", query, resp.StatusCode)
		}
	}
}

func TestUpdateAndDeleteMovie(t *testing.T) {
	ts, _ := newTestServer(t)

	created := postMovie(t, ts, api.MovieRequest{Year: 1984, Title: "Bolero"})

	body, _ := json.Marshal(api.MovieRequest{Year: 1984, Title: "Bolero", Winner: true})
	url := fmt.Sprintf("%s/api/movies/%d", ts.URL, created.ID)
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", resp.StatusCode)
	}
	var updated api.MovieResponse
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if !updated.Movie.Winner {
		t.Fatalf("expected winner flag set: %+v", updated.Movie)
	}

	del, _ := http.NewRequest(http.MethodDelete, url, nil)
	delResp, err := http.DefaultClient.Do(del)
	if err != nil {
		t.Fatalf("DELETE failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", delResp.StatusCode)
	}

	again, _ := http.NewRequest(http.MethodDelete, url, nil)
	againResp, err := http.DefaultClient.Do(again)
	if err != nil {
		t.Fatalf("second DELETE failed: %v", err)
	}
	againResp.Body.Close()
	if againResp.StatusCode != http.StatusNotFound {
		t.Fatalf("second DELETE status = %d, want 404", againResp.StatusCode)
	}
}

func TestIntervalsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	postMovie(t, ts, api.MovieRequest{Year: 2010, Title: "M1", Producers: "John Doe", Winner: true})
	postMovie(t, ts, api.MovieRequest{Year: 2015, Title: "M2", Producers: "John Doe", Winner: true})
	postMovie(t, ts, api.MovieRequest{Year: 2025, Title: "M3", Producers: "John Doe", Winner: true})
	postMovie(t, ts, api.MovieRequest{Year: 2020, Title: "M4", Producers: "Jane Smith", Winner: true})

	resp, err := http.Get(ts.URL + "/api/awards/intervals")
	if err != nil {
		t.Fatalf("GET intervals failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var intervals api.IntervalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&intervals); err != nil {
		t.Fatalf("decode intervals: %v", err)
	}
	if len(intervals.Min) != 1 || intervals.Min[0].Interval != 5 {
		t.Fatalf("unexpected min: %+v", intervals.Min)
	}
	if len(intervals.Max) != 1 || intervals.Max[0].Interval != 10 {
		t.Fatalf("unexpected max: %+v", intervals.Max)
	}
}

func TestIntervalsEndpointEmptyDataset(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/awards/intervals")
	if err != nil {
		t.Fatalf("GET intervals failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode intervals: %v", err)
	}
	for _, key := range []string{"min", "max"} {
		if string(raw[key]) != "[]" {
			t.Fatalf("%s = %s, want []", key, raw[key])
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET health failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var health api.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Fatalf("unexpected health: %+v", health)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/awards/intervals", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
