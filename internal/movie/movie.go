package movie

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// firstCeremonyYear is the earliest film year the awards cover.
const firstCeremonyYear = 1900

// Movie is one award record persisted in SQLite. Producers holds the
// raw credit string as loaded; individual names are derived on demand
// by the awards package.
type Movie struct {
	ID        int64
	Year      int
	Title     string
	Studios   string
	Producers string
	Winner    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the record against the data rules enforced at the
// API boundary. referenceYear is the latest acceptable film year and is
// passed explicitly so validation never reads ambient time.
func (m *Movie) Validate(referenceYear int) error {
	if m == nil {
		return errors.New("movie is nil")
	}
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title must not be blank")
	}
	if m.Year < firstCeremonyYear || m.Year > referenceYear {
		return fmt.Errorf("year must be between %d and %d", firstCeremonyYear, referenceYear)
	}
	return nil
}

// SortField names a column the list query may order by.
type SortField string

const (
	SortByID    SortField = "id"
	SortByYear  SortField = "year"
	SortByTitle SortField = "title"
)

// sortColumns whitelists ORDER BY targets; anything else falls back to id.
var sortColumns = map[SortField]string{
	SortByID:    "id",
	SortByYear:  "year",
	SortByTitle: "title",
}

// Filter narrows and pages a list query. Zero values mean "no
// constraint"; Winner is a pointer so false is distinguishable from
// unset.
type Filter struct {
	Year       int
	Winner     *bool
	Title      string
	Sort       SortField
	Descending bool
	Page       int
	PageSize   int
}

const (
	// DefaultPageSize applies when a list request omits the page size.
	DefaultPageSize = 50
	// MaxPageSize caps the page size a list request may ask for.
	MaxPageSize = 500
)

// Normalized returns the filter with paging defaults applied and the
// sort field confined to known columns. List applies it internally;
// callers that report pagination metadata must apply it too so the
// reported window matches the rows actually served.
func (f Filter) Normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if _, ok := sortColumns[f.Sort]; !ok {
		f.Sort = SortByID
	}
	return f
}
