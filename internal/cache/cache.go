package cache

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
)

// Store memoizes report payloads for a short TTL. Entries past their TTL are
// treated as absent on Get but are not eagerly removed; the LRU bounds how
// many stale entries can pile up. The clock is injected so tests can expire
// entries without sleeping.
type Store struct {
	ttl   time.Duration
	clock clockwork.Clock
	lru   *lru.Cache[string, entry]
}

type entry struct {
	payload  []byte
	storedAt time.Time
}

func New(ttl time.Duration, capacity int, clock clockwork.Clock) (*Store, error) {
	c, err := lru.New[string, entry](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{
		ttl:   ttl,
		clock: clock,
		lru:   c,
	}, nil
}

// Get returns the payload for key if it was stored less than TTL ago.
func (s *Store) Get(key string) ([]byte, bool) {
	e, ok := s.lru.Get(key)
	if !ok {
		return nil, false
	}
	if s.clock.Since(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

// Put replaces the entry for key, stamping the current time. The LRU swaps
// the whole entry value under its own lock, so a concurrent Get sees either
// the old payload or the new one, never a mix.
func (s *Store) Put(key string, payload []byte) {
	s.lru.Add(key, entry{payload: payload, storedAt: s.clock.Now()})
}

// Invalidate clears the single named entry.
func (s *Store) Invalidate(key string) {
	s.lru.Remove(key)
}

// InvalidatePrefix clears every entry whose key starts with prefix. Report
// keys embed scope and params after the report name, so invalidating a
// report name must sweep all of its variants.
func (s *Store) InvalidatePrefix(prefix string) {
	for _, k := range s.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			s.lru.Remove(k)
		}
	}
}

// InvalidateAll clears every entry.
func (s *Store) InvalidateAll() {
	s.lru.Purge()
}

// Len reports how many entries physically exist, expired ones included.
func (s *Store) Len() int {
	return s.lru.Len()
}
