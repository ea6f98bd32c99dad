package testsupport

import (
	"testing"

	"razzie/internal/config"
	"razzie/internal/movie"
)

// MustOpenStore opens a movie store for the supplied config and
// registers cleanup with the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *movie.Store {
	t.Helper()

	store, err := movie.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}
