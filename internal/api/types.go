package api

// MovieItem describes an award record in a transport-friendly format.
type MovieItem struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	Title     string `json:"title"`
	Studios   string `json:"studios,omitempty"`
	Producers string `json:"producers,omitempty"`
	Winner    bool   `json:"winner"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// MovieRequest carries the writable fields for create and update calls.
type MovieRequest struct {
	Year      int    `json:"year"`
	Title     string `json:"title"`
	Studios   string `json:"studios"`
	Producers string `json:"producers"`
	Winner    bool   `json:"winner"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// MovieListResponse wraps a page of records.
type MovieListResponse struct {
	Items      []MovieItem `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// MovieResponse wraps a single record.
type MovieResponse struct {
	Movie MovieItem `json:"movie"`
}

// IntervalEntry is one producer win interval on the wire.
type IntervalEntry struct {
	Producer     string `json:"producer"`
	Interval     int    `json:"interval"`
	PreviousWin  int    `json:"previousWin"`
	FollowingWin int    `json:"followingWin"`
}

// IntervalsResponse is the min/max interval payload.
type IntervalsResponse struct {
	Min []IntervalEntry `json:"min"`
	Max []IntervalEntry `json:"max"`
}

// HealthResponse reports service and store health.
type HealthResponse struct {
	Status string `json:"status"`
	Movies int    `json:"movies"`
}
