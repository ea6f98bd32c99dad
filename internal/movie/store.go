package movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"razzie/internal/config"
)

// Store manages award record persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the movie database and ensures the
// schema is current.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Database.Dir, "razzie.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("store is not open")
	}
	return s.db.PingContext(ctx)
}

// Insert persists a new record and returns it with its assigned ID.
// IDs come from AUTOINCREMENT, so they increase monotonically and are
// never reused even after deletions or restarts.
func (s *Store) Insert(ctx context.Context, m *Movie) (*Movie, error) {
	if m == nil {
		return nil, errors.New("movie is nil")
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO movies (year, title, studios, producers, winner, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Year,
		strings.TrimSpace(m.Title),
		m.Studios,
		m.Producers,
		boolToInt(m.Winner),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches a record by identifier. A missing record returns
// (nil, nil).
func (s *Store) GetByID(ctx context.Context, id int64) (*Movie, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return m, nil
}

// Update persists changes to an existing record.
func (s *Store) Update(ctx context.Context, m *Movie) error {
	if m == nil {
		return errors.New("movie is nil")
	}
	m.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE movies
         SET year = ?, title = ?, studios = ?, producers = ?, winner = ?, updated_at = ?
         WHERE id = ?`,
		m.Year,
		strings.TrimSpace(m.Title),
		m.Studios,
		m.Producers,
		boolToInt(m.Winner),
		m.UpdatedAt.Format(time.RFC3339Nano),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a record by identifier, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// List returns records matching the filter, paged and ordered. The
// filter is normalized first, so out-of-range pages and unknown sort
// fields degrade to defaults rather than failing.
func (s *Store) List(ctx context.Context, f Filter) ([]*Movie, error) {
	f = f.Normalized()
	where, args := buildWhere(f)

	query := `SELECT ` + movieColumns + ` FROM movies` + where +
		` ORDER BY ` + sortColumns[f.Sort] + direction(f.Descending) +
		`, id` + direction(f.Descending) +
		` LIMIT ? OFFSET ?`
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Count returns the number of records matching the filter, ignoring
// pagination.
func (s *Store) Count(ctx context.Context, f Filter) (int, error) {
	where, args := buildWhere(f)
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM movies`+where, args...)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

// Winners returns every winning record ordered by year. This feeds the
// interval engine, which tolerates nil entries and malformed fields on
// its own.
func (s *Store) Winners(ctx context.Context) ([]*Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE winner = 1 ORDER BY year, id`)
	if err != nil {
		return nil, fmt.Errorf("query winners: %w", err)
	}
	defer rows.Close()

	var winners []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		winners = append(winners, m)
	}
	return winners, rows.Err()
}

func buildWhere(f Filter) (string, []any) {
	var clauses []string
	var args []any
	if f.Year > 0 {
		clauses = append(clauses, "year = ?")
		args = append(args, f.Year)
	}
	if f.Winner != nil {
		clauses = append(clauses, "winner = ?")
		args = append(args, boolToInt(*f.Winner))
	}
	if title := strings.TrimSpace(f.Title); title != "" {
		clauses = append(clauses, `title LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(title)+"%")
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`%`, `\%`, `_`, `\_`, `\`, `\\`)
	return replacer.Replace(value)
}

func direction(descending bool) string {
	if descending {
		return " DESC"
	}
	return " ASC"
}

const movieColumns = "id, year, title, studios, producers, winner, created_at, updated_at"

func scanMovie(scanner interface{ Scan(dest ...any) error }) (*Movie, error) {
	var (
		id         int64
		year       int
		title      string
		studios    sql.NullString
		producers  sql.NullString
		winner     int
		createdRaw sql.NullString
		updatedRaw sql.NullString
	)
	if err := scanner.Scan(&id, &year, &title, &studios, &producers, &winner, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	m := &Movie{
		ID:        id,
		Year:      year,
		Title:     title,
		Studios:   studios.String,
		Producers: producers.String,
		Winner:    winner != 0,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		m.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		m.UpdatedAt = updated
	}
	return m, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
