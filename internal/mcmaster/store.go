package mcmaster

import "sync/atomic"

// Store holds the live catalog snapshot. Readers are lock-free; the watcher
// swaps in a whole new immutable catalog on reload.
type Store struct {
	current atomic.Pointer[Catalog]
}

func NewStore(catalog *Catalog) *Store {
	s := &Store{}
	if catalog == nil {
		catalog = EmptyCatalog()
	}
	s.current.Store(catalog)
	return s
}

// Get returns the current snapshot.
func (s *Store) Get() *Catalog {
	return s.current.Load()
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(catalog *Catalog) {
	if catalog == nil {
		catalog = EmptyCatalog()
	}
	s.current.Store(catalog)
}
