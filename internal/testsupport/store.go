package testsupport

import (
	"testing"

	"bitext/internal/tmstore"
)

// MustOpenStore opens a tmstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, path string) *tmstore.Store {
	t.Helper()

	store, err := tmstore.Open(path)
	if err != nil {
		t.Fatalf("tmstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
