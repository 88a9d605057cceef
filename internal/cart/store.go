package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps carts in memory keyed by session id. Carts do not survive a
// restart.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
	opts  []Option
}

func NewStore(opts ...Option) *Store {
	return &Store{
		carts: make(map[uuid.UUID]*Cart),
		opts:  opts,
	}
}

func (s *Store) Create() *Cart {
	c := New(uuid.New(), s.opts...)

	s.mu.Lock()
	s.carts[c.ID()] = c
	s.mu.Unlock()

	return c
}

func (s *Store) Get(id uuid.UUID) (*Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]

	return c, ok
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.carts)
}

// Sweep drops carts untouched since before cutoff and reports how many went.
func (s *Store) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, c := range s.carts {
		if c.UpdatedAt().Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}

	return removed
}
