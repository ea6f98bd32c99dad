package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"razzie/internal/logging"
	"razzie/internal/movie"
)

// expected column order in the awards CSV.
const (
	columnYear = iota
	columnTitle
	columnStudios
	columnProducers
	columnWinner
	columnCount
)

// Summary reports the outcome of a bulk load.
type Summary struct {
	Loaded  int
	Skipped int
}

// RecordWriter is the subset of the store the loader needs.
type RecordWriter interface {
	Insert(ctx context.Context, m *movie.Movie) (*movie.Movie, error)
}

// Loader reads awards CSV data into the store.
type Loader struct {
	store     RecordWriter
	logger    *slog.Logger
	delimiter rune
}

// NewLoader constructs a Loader. A zero delimiter defaults to the
// semicolon used by the published awards list.
func NewLoader(store RecordWriter, logger *slog.Logger, delimiter rune) *Loader {
	if delimiter == 0 {
		delimiter = ';'
	}
	return &Loader{
		store:     store,
		logger:    logging.NewComponentLogger(logger, "ingest"),
		delimiter: delimiter,
	}
}

// LoadFile reads the CSV at path into the store.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return l.Load(ctx, file)
}

// Load reads CSV rows from r into the store. Malformed rows are counted
// and skipped with a warning; only I/O and storage failures abort the
// load.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var summary Summary
	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			// A ragged or unquotable row is data damage, not a reason
			// to abandon the rest of the file.
			l.logger.Warn("unreadable csv row", logging.Int("line", line), logging.Error(err))
			summary.Skipped++
			continue
		}
		if line == 1 && isHeader(row) {
			continue
		}

		record, err := parseRow(row)
		if err != nil {
			l.logger.Warn("skipping csv row", logging.Int("line", line), logging.Error(err))
			summary.Skipped++
			continue
		}

		if _, err := l.store.Insert(ctx, record); err != nil {
			return summary, fmt.Errorf("insert row %d: %w", line, err)
		}
		summary.Loaded++
	}

	l.logger.Info("csv load complete",
		logging.Int("loaded", summary.Loaded),
		logging.Int("skipped", summary.Skipped))
	return summary, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[columnYear]), "year")
}

func parseRow(row []string) (*movie.Movie, error) {
	if len(row) < columnWinner {
		return nil, fmt.Errorf("expected at least %d columns, got %d", columnWinner, len(row))
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[columnYear]))
	if err != nil {
		return nil, fmt.Errorf("bad year %q", row[columnYear])
	}
	title := strings.TrimSpace(row[columnTitle])
	if title == "" {
		return nil, errors.New("blank title")
	}

	record := &movie.Movie{
		Year:    year,
		Title:   title,
		Studios: strings.TrimSpace(row[columnStudios]),
	}
	if len(row) > columnProducers {
		record.Producers = strings.TrimSpace(row[columnProducers])
	}
	if len(row) > columnWinner {
		record.Winner = strings.EqualFold(strings.TrimSpace(row[columnWinner]), "yes")
	}
	return record, nil
}
